package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"celebrate/internal/cache"
	"celebrate/internal/config"
	"celebrate/internal/engine"
	"celebrate/internal/log"
	"celebrate/internal/metrics"
	"celebrate/internal/store"
)

// Options configure a Service. Zero cache values disable caching.
type Options struct {
	ParsePolicy engine.ParsePolicy
	CacheSize   int
	CacheTTL    time.Duration
	Logger      *log.Logger
	Metrics     *metrics.Metrics
	// Now is the clock used for the home greeting. Defaults to time.Now.
	Now func() time.Time
}

// Service computes screen views from a record catalog.
type Service struct {
	catalog  store.Catalog
	engines  Engines
	tables   tables
	policy   engine.ParsePolicy
	logger   *log.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
	manager  *cache.Manager
	home     cache.Cache[HomeView]
	discover cache.Cache[DiscoverView]
	friends  cache.Cache[FriendsView]
	wishlist cache.Cache[WishlistView]
	profile  cache.Cache[ProfileView]
}

type tables struct {
	birthday  engine.ThresholdTable
	discount  engine.ThresholdTable
	greeting  engine.ThresholdTable
	highlight engine.ThresholdTable
}

func NewService(catalog store.Catalog, thresholds config.Thresholds, opts Options) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("views: catalog is nil")
	}
	if opts.ParsePolicy != engine.ParseAbort && opts.ParsePolicy != engine.ParseSkip {
		return nil, engine.ErrParsePolicyUnset
	}

	var t tables
	var err error
	if t.birthday, err = thresholds.Table(config.TableBirthday); err != nil {
		return nil, err
	}
	if t.discount, err = thresholds.Table(config.TableDiscount); err != nil {
		return nil, err
	}
	if t.greeting, err = thresholds.Table(config.TableGreeting); err != nil {
		return nil, err
	}
	if t.highlight, err = thresholds.Table(config.TableHighlight); err != nil {
		return nil, err
	}

	logger := log.OrDefault(opts.Logger, log.ComponentViews)
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Service{
		catalog: catalog,
		engines: Engines{
			Places:       engine.New(PlaceSchema(), logger),
			Friends:      engine.New(FriendSchema(), logger),
			Wishlist:     engine.New(WishlistSchema(), logger),
			Achievements: engine.New(AchievementSchema(), logger),
		},
		tables:  t,
		policy:  opts.ParsePolicy,
		logger:  logger,
		metrics: opts.Metrics,
		now:     now,
	}

	if opts.CacheSize > 0 && opts.CacheTTL > 0 {
		s.manager = cache.NewManager(logger)
		home := cache.NewLRUCache[HomeView](opts.CacheSize, opts.CacheTTL)
		discover := cache.NewLRUCache[DiscoverView](opts.CacheSize, opts.CacheTTL)
		friends := cache.NewLRUCache[FriendsView](opts.CacheSize, opts.CacheTTL)
		wishlist := cache.NewLRUCache[WishlistView](opts.CacheSize, opts.CacheTTL)
		profile := cache.NewLRUCache[ProfileView](opts.CacheSize, opts.CacheTTL)
		for _, c := range []cache.Cleaner{home, discover, friends, wishlist, profile} {
			s.manager.Register(c)
		}
		s.home, s.discover, s.friends, s.wishlist, s.profile = home, discover, friends, wishlist, profile
		s.manager.StartCleanup(opts.CacheTTL)
	}

	return s, nil
}

// Close stops the cache sweeper.
func (s *Service) Close() {
	if s.manager != nil {
		s.manager.Stop()
	}
}

// Invalidate drops every cached view. Call it after the record source changes.
func (s *Service) Invalidate() {
	if s.manager == nil {
		return
	}
	s.home.Clear()
	s.discover.Clear()
	s.friends.Clear()
	s.wishlist.Clear()
	s.profile.Clear()
	s.logger.Debug("View cache invalidated")
}

// cacheKey normalizes a selector so equivalent selectors share an entry.
func cacheKey(sel engine.Selector) string {
	norm := func(v string) string {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			return engine.All
		}
		return v
	}
	return norm(sel.Category) + "|" + norm(sel.Filter) + "|" + strings.ToLower(sel.Query)
}

// cached returns the view under key, building and storing it on a miss.
// A nil cache always builds.
func cached[V any](c cache.Cache[V], key string, build func() (V, error)) (V, bool, error) {
	if c != nil {
		if v, ok := c.Get(key); ok {
			return v, true, nil
		}
	}
	v, err := build()
	if err != nil {
		return v, false, err
	}
	if c != nil {
		c.Set(key, v)
	}
	return v, false, nil
}

func (s *Service) observe(ctx context.Context, screen Screen, sel engine.Selector, start time.Time, hit bool, err error) {
	took := time.Since(start)
	s.metrics.ObserveView(string(screen), hit, took, err)
	if err != nil {
		fields := log.NewFields().
			WithScreen(string(screen)).
			WithSelector(sel.Category, sel.Filter, sel.Query).
			WithOperation(log.OpRender).
			WithError(err)
		s.logger.ErrorContext(ctx, "Failed to build view", fields.ToSlice()...)
		return
	}
	s.logger.DebugContext(ctx, "View served",
		log.FieldScreen, screen,
		"cache_hit", hit,
		log.FieldDuration, took.Milliseconds())
}

func (s *Service) Discover(ctx context.Context, sel engine.Selector) (DiscoverView, error) {
	start := time.Now()
	v, hit, err := cached(s.discover, cacheKey(sel), func() (DiscoverView, error) {
		places, err := s.catalog.Places(ctx)
		if err != nil {
			return DiscoverView{}, fmt.Errorf("load places: %w", err)
		}
		return BuildDiscover(s.engines.Places, places, sel), nil
	})
	s.observe(ctx, ScreenDiscover, sel, start, hit, err)
	return v, err
}

func (s *Service) Friends(ctx context.Context, sel engine.Selector) (FriendsView, error) {
	start := time.Now()
	v, hit, err := cached(s.friends, cacheKey(sel), func() (FriendsView, error) {
		friends, err := s.catalog.Friends(ctx)
		if err != nil {
			return FriendsView{}, fmt.Errorf("load friends: %w", err)
		}
		return BuildFriends(s.engines.Friends, s.tables.birthday, friends, sel)
	})
	s.observe(ctx, ScreenFriends, sel, start, hit, err)
	return v, err
}

func (s *Service) Wishlist(ctx context.Context, sel engine.Selector) (WishlistView, error) {
	start := time.Now()
	v, hit, err := cached(s.wishlist, cacheKey(sel), func() (WishlistView, error) {
		items, err := s.catalog.WishlistItems(ctx)
		if err != nil {
			return WishlistView{}, fmt.Errorf("load wishlist: %w", err)
		}
		spec := WishlistAggregate(s.policy)
		spec.Logger = s.logger
		return BuildWishlist(s.engines.Wishlist, s.tables.discount, spec, items, sel)
	})
	if err == nil && !hit {
		s.metrics.AddSkipped(len(v.Summary.Skipped))
	}
	s.observe(ctx, ScreenWishlist, sel, start, hit, err)
	return v, err
}

// Home is keyed by the hour of the clock so the greeting follows the time of day.
func (s *Service) Home(ctx context.Context) (HomeView, error) {
	start := time.Now()
	hour := s.now().Hour()
	v, hit, err := cached(s.home, strconv.Itoa(hour), func() (HomeView, error) {
		friends, err := s.catalog.Friends(ctx)
		if err != nil {
			return HomeView{}, fmt.Errorf("load friends: %w", err)
		}
		events, err := s.catalog.Events(ctx)
		if err != nil {
			return HomeView{}, fmt.Errorf("load events: %w", err)
		}
		return BuildHome(HomeTables{
			Birthday:  s.tables.birthday,
			Highlight: s.tables.highlight,
			Greeting:  s.tables.greeting,
		}, hour, friends, events)
	})
	s.observe(ctx, ScreenHome, engine.Selector{}, start, hit, err)
	return v, err
}

func (s *Service) Profile(ctx context.Context, sel engine.Selector) (ProfileView, error) {
	start := time.Now()
	v, hit, err := cached(s.profile, cacheKey(sel), func() (ProfileView, error) {
		achievements, err := s.catalog.Achievements(ctx)
		if err != nil {
			return ProfileView{}, fmt.Errorf("load achievements: %w", err)
		}
		return BuildProfile(s.engines.Achievements, achievements, sel), nil
	})
	s.observe(ctx, ScreenProfile, sel, start, hit, err)
	return v, err
}

// Dashboard builds every screen in parallel. Screens missing from selectors
// use the empty selector.
func (s *Service) Dashboard(ctx context.Context, selectors map[Screen]engine.Selector) (*Dashboard, error) {
	var d Dashboard
	ctx, _ = log.WithRunID(ctx)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.Home, err = s.Home(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Discover, err = s.Discover(ctx, selectors[ScreenDiscover])
		return err
	})
	g.Go(func() (err error) {
		d.Friends, err = s.Friends(ctx, selectors[ScreenFriends])
		return err
	})
	g.Go(func() (err error) {
		d.Wishlist, err = s.Wishlist(ctx, selectors[ScreenWishlist])
		return err
	})
	g.Go(func() (err error) {
		d.Profile, err = s.Profile(ctx, selectors[ScreenProfile])
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
