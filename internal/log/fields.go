package log

// Attribute keys.
const (
	FieldComponent        = "component"
	FieldScreen           = "screen"
	FieldSelectorCategory = "selector_category"
	FieldSelectorFilter   = "selector_filter"
	FieldQuery            = "query"
	FieldRecordID         = "record_id"
	FieldRecordField      = "record_field"
	FieldValue            = "value"
	FieldCount            = "count"
	FieldTable            = "table"
	FieldSignal           = "signal"
	FieldTier             = "tier"
	FieldBackend          = "backend"
	FieldError            = "error"
	FieldOperation        = "operation"
	FieldDuration         = "duration_ms"
)

const (
	ComponentApp       = "app"
	ComponentFilter    = "filter"
	ComponentAggregate = "aggregate"
	ComponentClassify  = "classify"
	ComponentStore     = "store"
	ComponentViews     = "views"
	ComponentConfig    = "config"
	ComponentCache     = "cache"
)

// Values for FieldOperation.
const (
	OpFilter    = "filter"
	OpAggregate = "aggregate"
	OpClassify  = "classify"
	OpLoad      = "load"
	OpMigrate   = "migrate"
	OpRender    = "render"
	OpStartup   = "startup"
)

// LogFields collects attributes for a single record; pass ToSlice() to a log call.
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError is a no-op for a nil err.
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

func (f LogFields) WithSelector(category, filter, query string) LogFields {
	f[FieldSelectorCategory] = category
	f[FieldSelectorFilter] = filter
	f[FieldQuery] = query
	return f
}

func (f LogFields) WithScreen(screen string) LogFields {
	f[FieldScreen] = screen
	return f
}

// ToSlice flattens the fields into alternating keys and values. Order is unspecified.
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
