package memory

import "celebrate/internal/core"

// Fixtures returns the sample records shown by the app screens.
func Fixtures() Data {
	return Data{
		Places: []core.Place{
			{
				ID: 1, Name: "The Rooftop Lounge", Category: "Restaurant",
				Rating: 4.8, Reviews: 324, PriceLevel: "$$$", DistanceMiles: 0.5,
				Description: "Stunning city views with craft cocktails and modern cuisine",
				Tags:        []string{"Romantic", "City Views", "Cocktails"},
				OpenNow:     true, PriceRange: "$40-80 per person",
			},
			{
				ID: 2, Name: "Escape Room Adventure", Category: "Activity",
				Rating: 4.6, Reviews: 156, PriceLevel: "$$", DistanceMiles: 1.2,
				Description: "Immersive escape room experiences for groups",
				Tags:        []string{"Team Building", "Puzzle", "Group Activity"},
				OpenNow:     true, PriceRange: "$25-35 per person",
			},
			{
				ID: 3, Name: "Jazz & Blues Night", Category: "Event",
				Rating: 4.9, Reviews: 89, PriceLevel: "$", DistanceMiles: 2.1,
				Description: "Live jazz performances every Friday night",
				Tags:        []string{"Live Music", "Jazz", "Intimate Setting"},
				OpenNow:     false, PriceRange: "$15-25 cover charge",
			},
			{
				ID: 4, Name: "Bowling Alley & Bar", Category: "Venue",
				Rating: 4.4, Reviews: 267, PriceLevel: "$$", DistanceMiles: 0.8,
				Description: "Modern bowling with craft beer and arcade games",
				Tags:        []string{"Bowling", "Arcade", "Sports Bar"},
				OpenNow:     true, PriceRange: "$20-40 per person",
			},
			{
				ID: 5, Name: "Artisan Coffee & Gallery", Category: "Restaurant",
				Rating: 4.7, Reviews: 198, PriceLevel: "$", DistanceMiles: 0.3,
				Description: "Specialty coffee with rotating local art exhibitions",
				Tags:        []string{"Coffee", "Art", "Quiet", "WiFi"},
				OpenNow:     true, PriceRange: "$5-15 per person",
			},
			{
				ID: 6, Name: "Comedy Club Downtown", Category: "Entertainment",
				Rating: 4.5, Reviews: 142, PriceLevel: "$$", DistanceMiles: 1.8,
				Description: "Stand-up comedy shows with local and touring comedians",
				Tags:        []string{"Comedy", "Entertainment", "Date Night"},
				OpenNow:     false, PriceRange: "$20-35 per person",
			},
		},
		Friends: []core.Friend{
			{
				ID: 1, Name: "Sarah Johnson", Birthday: "March 12", DaysUntil: 0, Status: core.BirthdayToday,
				Age: 28, Location: "San Francisco, CA", MutualFriends: 12, Relationship: core.RelationshipClose,
				Interests: []string{"Photography", "Travel"}, LastActive: "2 hours ago",
			},
			{
				ID: 2, Name: "Mike Chen", Birthday: "March 15", DaysUntil: 3, Status: core.BirthdayUpcoming,
				Age: 32, Location: "New York, NY", MutualFriends: 8, Relationship: core.RelationshipColleague,
				Interests: []string{"Tech", "Gaming"}, LastActive: "1 day ago",
			},
			{
				ID: 3, Name: "Emma Davis", Birthday: "March 18", DaysUntil: 6, Status: core.BirthdayUpcoming,
				Age: 25, Location: "Los Angeles, CA", MutualFriends: 15, Relationship: core.RelationshipBest,
				Interests: []string{"Art", "Music"}, LastActive: "5 minutes ago",
			},
			{
				ID: 4, Name: "Alex Rodriguez", Birthday: "April 22", DaysUntil: 42, Status: core.BirthdayNormal,
				Age: 29, Location: "Chicago, IL", MutualFriends: 6, Relationship: core.RelationshipFriend,
				Interests: []string{"Sports", "Music"}, LastActive: "3 hours ago",
			},
			{
				ID: 5, Name: "Lisa Wang", Birthday: "May 8", DaysUntil: 58, Status: core.BirthdayNormal,
				Age: 31, Location: "Seattle, WA", MutualFriends: 9, Relationship: core.RelationshipClose,
				Interests: []string{"Science", "Hiking"}, LastActive: "30 minutes ago",
			},
		},
		Wishlist: []core.WishlistItem{
			{
				ID: 1, Name: "Sony WH-1000XM4 Wireless Headphones", Price: "$199.99", OriginalPrice: "$249.99",
				Store: "Amazon", AddedBy: "You", Priority: core.PriorityHigh, Trend: core.TrendDown, TrendPercentage: 20,
				InStock: true, Category: "Electronics", Rating: 4.8, Reviews: 1247,
			},
			{
				ID: 2, Name: "Breville Bambino Plus Coffee Maker", Price: "$89.99", OriginalPrice: "$89.99",
				Store: "Target", AddedBy: "Sarah", Priority: core.PriorityMedium, Trend: core.TrendStable,
				InStock: true, Category: "Kitchen", Rating: 4.6, Reviews: 892,
			},
			{
				ID: 3, Name: "Nike Air Max 270 Running Shoes", Price: "$129.99", OriginalPrice: "$159.99",
				Store: "Nike", AddedBy: "You", Priority: core.PriorityLow, Trend: core.TrendDown, TrendPercentage: 19,
				InStock: false, Category: "Fashion", Rating: 4.5, Reviews: 2156,
			},
			{
				ID: 4, Name: "Apple Watch Series 9", Price: "$299.99", OriginalPrice: "$299.99",
				Store: "Apple", AddedBy: "Mike", Priority: core.PriorityHigh, Trend: core.TrendUp, TrendPercentage: 5,
				InStock: true, Category: "Electronics", Rating: 4.9, Reviews: 3421,
			},
			{
				ID: 5, Name: "Instant Pot Duo 7-in-1 Pressure Cooker", Price: "$79.99", OriginalPrice: "$99.99",
				Store: "Williams Sonoma", AddedBy: "Emma", Priority: core.PriorityMedium, Trend: core.TrendDown, TrendPercentage: 20,
				InStock: true, Category: "Kitchen", Rating: 4.7, Reviews: 1876,
			},
			{
				ID: 6, Name: "Kindle Paperwhite E-reader", Price: "$139.99", OriginalPrice: "$139.99",
				Store: "Amazon", AddedBy: "You", Priority: core.PriorityLow, Trend: core.TrendStable,
				InStock: true, Category: "Books", Rating: 4.6, Reviews: 987,
			},
		},
		Events: []core.Event{
			{
				ID: 1, Title: "Sarah's Birthday Celebration", Date: "Today", Time: "7:00 PM",
				Location: "The Rooftop Lounge", Attendees: 12, MaxAttendees: 20, Organizer: "Alex Johnson",
				Category: "Birthday Party", Rating: 4.8, RSVP: core.RSVPGoing,
			},
			{
				ID: 2, Title: "Mike's Surprise Party Planning", Date: "March 15", Time: "6:30 PM",
				Location: "Downtown Bowling Alley", Attendees: 8, MaxAttendees: 15, Organizer: "Lisa Wang",
				Category: "Surprise Party", Price: "$25 per person", RSVP: core.RSVPMaybe,
			},
		},
		Achievements: []core.Achievement{
			{ID: 1, Title: "Party Planner", Description: "Organized 10+ events", Unlocked: true},
			{ID: 2, Title: "Gift Giver", Description: "Sent 25+ gifts", Unlocked: true},
			{ID: 3, Title: "Social Butterfly", Description: "100+ friends", Unlocked: true},
			{ID: 4, Title: "Memory Maker", Description: "Shared 50+ photos", Unlocked: false},
		},
	}
}
