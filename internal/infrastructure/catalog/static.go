// Package catalog provides the static in-memory product catalog used as a
// stand-in for a real affiliate product feed. Entries are hand-authored,
// loaded once at startup, and never mutated.
package catalog

import (
	"github.com/ocassia/backend/internal/domain"
	"github.com/ocassia/backend/internal/infrastructure/affiliate"
)

// StaticCatalog is a read-only tag -> entries mapping
type StaticCatalog struct {
	entries map[string][]domain.CatalogEntry
	tags    []string
}

// NewStaticCatalog builds the catalog and decorates every entry with an
// affiliate product link for its ASIN-style ID
func NewStaticCatalog(links *affiliate.LinkBuilder) *StaticCatalog {
	entries := make(map[string][]domain.CatalogEntry, len(catalogData))
	tags := make([]string, 0, len(catalogData))

	for _, group := range catalogData {
		list := make([]domain.CatalogEntry, len(group.entries))
		copy(list, group.entries)
		for i := range list {
			list[i].AffiliateLink = links.AmazonProductLink(list[i].ID)
		}
		entries[group.tag] = list
		tags = append(tags, group.tag)
	}

	return &StaticCatalog{entries: entries, tags: tags}
}

// LookupByTag returns the entry list for a tag, or nil for unknown tags.
// Callers must not mutate the returned slice.
func (c *StaticCatalog) LookupByTag(tag string) []domain.CatalogEntry {
	return c.entries[tag]
}

// Tags returns all known catalog tags in declaration order
func (c *StaticCatalog) Tags() []string {
	return c.tags
}

// catalogData is the hand-authored mock Amazon feed. Tag is the lookup key
// used by search triggers; Category is the interest vocabulary used by
// scoring (they differ for makeup/beauty and jewelry/fashion).
var catalogData = []struct {
	tag     string
	entries []domain.CatalogEntry
}{
	{
		tag: "makeup",
		entries: []domain.CatalogEntry{
			{ID: "B09XMTQ6P1", Title: "e.l.f. Pure Skin Super Serum Starter Kit", Price: "$24.00", ImageURL: "https://m.media-amazon.com/images/I/61qPv2mSkit.jpg", Rating: 4.5, ReviewCount: 12840, Description: "Hydrating three-step serum kit with hyaluronic acid and niacinamide for all skin types", Category: "beauty", IsPrimeEligible: true},
			{ID: "B07GBTJ6JJ", Title: "Maybelline Lash Sensational Sky High Mascara", Price: "$9.98", ImageURL: "https://m.media-amazon.com/images/I/51mascara.jpg", Rating: 4.4, ReviewCount: 98210, Description: "Lengthening washable mascara with bamboo extract for full volume lashes", Category: "beauty", IsPrimeEligible: true},
			{ID: "B08R7YQLKV", Title: "Revlon One-Step Volumizer Hair Dryer Brush", Price: "$34.88", ImageURL: "https://m.media-amazon.com/images/I/71dryerbrush.jpg", Rating: 4.6, ReviewCount: 412305, Description: "Hot air brush that dries and volumizes in one step, salon blowout at home", Category: "beauty", IsPrimeEligible: true},
			{ID: "B01LXLM6FV", Title: "NYX Professional Makeup Setting Spray, Matte Finish", Price: "$8.97", ImageURL: "https://m.media-amazon.com/images/I/61setspray.jpg", Rating: 4.3, ReviewCount: 65470, Description: "Lightweight long-lasting makeup setting spray with a matte finish", Category: "beauty", IsPrimeEligible: true},
			{ID: "B0B2DM3KPL", Title: "Laneige Lip Sleeping Mask, Berry", Price: "$24.00", ImageURL: "https://m.media-amazon.com/images/I/51lipmask.jpg", Rating: 4.6, ReviewCount: 38920, Description: "Overnight lip treatment with vitamin C and antioxidants for smooth soft lips", Category: "beauty", IsPrimeEligible: true},
		},
	},
	{
		tag: "jewelry",
		entries: []domain.CatalogEntry{
			{ID: "B07YQD3WVN", Title: "Pavoi 14K Gold Plated Huggie Earrings", Price: "$13.95", ImageURL: "https://m.media-amazon.com/images/I/61huggies.jpg", Rating: 4.5, ReviewCount: 54230, Description: "Lightweight gold plated cubic zirconia huggie hoop earrings, hypoallergenic", Category: "fashion", IsPrimeEligible: true},
			{ID: "B08CXYZ1M2", Title: "Swarovski Attract Crystal Pendant Necklace", Price: "$79.00", ImageURL: "https://m.media-amazon.com/images/I/51pendant.jpg", Rating: 4.7, ReviewCount: 8120, Description: "Round crystal pendant on a rhodium plated chain, arrives in gift packaging", Category: "fashion", IsPrimeEligible: true},
			{ID: "B01N4JCYPM", Title: "Kate Spade New York Mini Pendant", Price: "$58.00", ImageURL: "https://m.media-amazon.com/images/I/51katespade.jpg", Rating: 4.6, ReviewCount: 4310, Description: "Delicate everyday pendant necklace in gold tone with mother of pearl accent", Category: "fashion", IsPrimeEligible: false},
			{ID: "B09JWXM4QD", Title: "Mejuri-Style Bold Hoop Earrings Sterling Silver", Price: "$29.99", ImageURL: "https://m.media-amazon.com/images/I/51hoops.jpg", Rating: 4.4, ReviewCount: 12780, Description: "Chunky sterling silver hoops with secure hinge closure, tarnish resistant", Category: "fashion", IsPrimeEligible: true},
			{ID: "B07T6CQZZS", Title: "Personalized Birthstone Initial Bracelet", Price: "$19.95", ImageURL: "https://m.media-amazon.com/images/I/51bracelet.jpg", Rating: 4.5, ReviewCount: 23540, Description: "Adjustable 14K gold filled bracelet with custom initial charm and birthstone", Category: "fashion", IsPrimeEligible: true},
		},
	},
	{
		tag: "reading",
		entries: []domain.CatalogEntry{
			{ID: "B09SWW583J", Title: "Kindle Paperwhite (16 GB)", Price: "$149.99", ImageURL: "https://m.media-amazon.com/images/I/61kindle.jpg", Rating: 4.7, ReviewCount: 87650, Description: "Waterproof e-reader with 6.8 inch glare-free display and adjustable warm light", Category: "reading", IsPrimeEligible: true},
			{ID: "B07D6LP8MN", Title: "Book Lover's Reading Journal", Price: "$14.95", ImageURL: "https://m.media-amazon.com/images/I/51journal.jpg", Rating: 4.6, ReviewCount: 9840, Description: "Hardcover journal for tracking books read, ratings, quotes, and a to-read list", Category: "reading", IsPrimeEligible: true},
			{ID: "B08WRKJV5Z", Title: "Glocusent LED Neck Reading Light", Price: "$19.99", ImageURL: "https://m.media-amazon.com/images/I/51necklight.jpg", Rating: 4.5, ReviewCount: 41230, Description: "Rechargeable hands-free book light with three color temperatures for night reading", Category: "reading", IsPrimeEligible: true},
			{ID: "B0C5MHK2PT", Title: "Literary Candle Set: Old Books Scent", Price: "$26.99", ImageURL: "https://m.media-amazon.com/images/I/51bookcandle.jpg", Rating: 4.4, ReviewCount: 5630, Description: "Soy candle trio inspired by libraries, rainy days, and first editions", Category: "reading", IsPrimeEligible: true},
			{ID: "B01FV0F8H8", Title: "Wooden Book Page Holder Thumb Ring", Price: "$9.99", ImageURL: "https://m.media-amazon.com/images/I/41pageholder.jpg", Rating: 4.3, ReviewCount: 18750, Description: "Handmade walnut page spreader for comfortable one-handed reading", Category: "reading", IsPrimeEligible: true},
		},
	},
	{
		tag: "gaming",
		entries: []domain.CatalogEntry{
			{ID: "B08FC6C75Y", Title: "Razer BlackShark V2 X Gaming Headset", Price: "$39.99", ImageURL: "https://m.media-amazon.com/images/I/61headset.jpg", Rating: 4.5, ReviewCount: 72140, Description: "7.1 surround sound gaming headset with noise-cancelling mic for PC and console", Category: "gaming", IsPrimeEligible: true},
			{ID: "B09B2SBHQK", Title: "Xbox Core Wireless Controller, Carbon Black", Price: "$54.99", ImageURL: "https://m.media-amazon.com/images/I/61controller.jpg", Rating: 4.8, ReviewCount: 145230, Description: "Wireless controller with textured grip and hybrid d-pad, works on Xbox and PC", Category: "gaming", IsPrimeEligible: true},
			{ID: "B0BX7FDVKK", Title: "RGB Gaming Mouse Pad XXL", Price: "$23.99", ImageURL: "https://m.media-amazon.com/images/I/61mousepad.jpg", Rating: 4.6, ReviewCount: 31280, Description: "Extended LED gaming mouse pad with 14 lighting modes and non-slip base", Category: "gaming", IsPrimeEligible: true},
			{ID: "B07YBXH3MN", Title: "Nintendo Switch Carrying Case and Screen Protector", Price: "$17.99", ImageURL: "https://m.media-amazon.com/images/I/61switchcase.jpg", Rating: 4.7, ReviewCount: 88940, Description: "Hard shell travel case holding console, 10 game cards, and accessories", Category: "gaming", IsPrimeEligible: true},
			{ID: "B098RKWHHZ", Title: "Gaming Controller Charging Dock Station", Price: "$29.99", ImageURL: "https://m.media-amazon.com/images/I/61dock.jpg", Rating: 4.4, ReviewCount: 19820, Description: "Dual fast-charging dock with LED indicators for wireless controllers", Category: "gaming", IsPrimeEligible: true},
		},
	},
	{
		tag: "coffee",
		entries: []domain.CatalogEntry{
			{ID: "B07SVRCGXG", Title: "Fellow Stagg EKG Electric Gooseneck Kettle", Price: "$165.00", ImageURL: "https://m.media-amazon.com/images/I/61kettle.jpg", Rating: 4.7, ReviewCount: 12430, Description: "Variable temperature pour-over kettle with precision spout and hold mode", Category: "coffee", IsPrimeEligible: true},
			{ID: "B0047BIWSK", Title: "Aeropress Original Coffee Press", Price: "$39.95", ImageURL: "https://m.media-amazon.com/images/I/61aeropress.jpg", Rating: 4.8, ReviewCount: 54210, Description: "Travel-friendly immersion brewer making smooth espresso-style coffee in a minute", Category: "coffee", IsPrimeEligible: true},
			{ID: "B00LYB6S60", Title: "JavaPresse Manual Burr Coffee Grinder", Price: "$24.99", ImageURL: "https://m.media-amazon.com/images/I/61grinder.jpg", Rating: 4.4, ReviewCount: 28740, Description: "Adjustable ceramic burr hand grinder, quiet and portable for fresh grounds anywhere", Category: "coffee", IsPrimeEligible: true},
			{ID: "B08JLHVY2X", Title: "Atlas Coffee Club World Tour Sampler", Price: "$34.00", ImageURL: "https://m.media-amazon.com/images/I/61sampler.jpg", Rating: 4.5, ReviewCount: 6310, Description: "Single-origin coffee sampler from four countries with tasting notes and postcards", Category: "coffee", IsPrimeEligible: false},
			{ID: "B01M0PPIC1", Title: "Ember Temperature Control Smart Mug 2", Price: "$129.95", ImageURL: "https://m.media-amazon.com/images/I/51embermug.jpg", Rating: 4.3, ReviewCount: 21050, Description: "App-controlled heated mug that keeps coffee at the exact temperature for hours", Category: "coffee", IsPrimeEligible: true},
		},
	},
	{
		tag: "tech",
		entries: []domain.CatalogEntry{
			{ID: "B09JQMJHXY", Title: "Anker 737 Power Bank 24,000mAh", Price: "$109.99", ImageURL: "https://m.media-amazon.com/images/I/61powerbank.jpg", Rating: 4.6, ReviewCount: 18920, Description: "140W fast-charging power bank with smart digital display for laptops and phones", Category: "tech", IsPrimeEligible: true},
			{ID: "B0BDHWDR12", Title: "Echo Dot (5th Gen) Smart Speaker", Price: "$49.99", ImageURL: "https://m.media-amazon.com/images/I/61echodot.jpg", Rating: 4.7, ReviewCount: 231540, Description: "Compact smart speaker with improved audio and temperature sensor", Category: "tech", IsPrimeEligible: true},
			{ID: "B07PXGQC1Q", Title: "Tile Mate Bluetooth Tracker 4-Pack", Price: "$69.99", ImageURL: "https://m.media-amazon.com/images/I/51tile.jpg", Rating: 4.5, ReviewCount: 44310, Description: "Key, wallet, and bag finder with app-based ring and community location network", Category: "tech", IsPrimeEligible: true},
			{ID: "B08TT8HLLC", Title: "Peak Design Everyday Camera Backpack 20L", Price: "$279.95", ImageURL: "https://m.media-amazon.com/images/I/61camerabag.jpg", Rating: 4.8, ReviewCount: 3240, Description: "Weatherproof camera backpack with configurable dividers and side access for lenses", Category: "tech", IsPrimeEligible: false},
			{ID: "B09V3HN2HH", Title: "Logitech MX Master 3S Wireless Mouse", Price: "$99.99", ImageURL: "https://m.media-amazon.com/images/I/61mxmaster.jpg", Rating: 4.7, ReviewCount: 29840, Description: "Quiet-click ergonomic mouse with 8K DPI tracking on any surface including glass", Category: "tech", IsPrimeEligible: true},
		},
	},
	{
		tag: "fitness",
		entries: []domain.CatalogEntry{
			{ID: "B07TMHLTRP", Title: "Fitbit Inspire 3 Fitness Tracker", Price: "$99.95", ImageURL: "https://m.media-amazon.com/images/I/51fitbit.jpg", Rating: 4.4, ReviewCount: 37210, Description: "Slim fitness tracker with heart rate, sleep score, and 10-day battery", Category: "fitness", IsPrimeEligible: true},
			{ID: "B01LP0U5X0", Title: "Manduka PRO Yoga Mat 6mm", Price: "$138.00", ImageURL: "https://m.media-amazon.com/images/I/61yogamat.jpg", Rating: 4.7, ReviewCount: 9420, Description: "Dense cushioned professional yoga mat with lifetime guarantee and zero-waste finish", Category: "fitness", IsPrimeEligible: true},
			{ID: "B08B3XFSFS", Title: "Hydro Flask 32 oz Wide Mouth Bottle", Price: "$44.95", ImageURL: "https://m.media-amazon.com/images/I/51hydroflask.jpg", Rating: 4.8, ReviewCount: 68230, Description: "Insulated stainless steel water bottle keeping drinks cold 24 hours", Category: "fitness", IsPrimeEligible: true},
			{ID: "B097B2CQXG", Title: "Resistance Bands Set with Door Anchor", Price: "$27.99", ImageURL: "https://m.media-amazon.com/images/I/61bands.jpg", Rating: 4.5, ReviewCount: 51240, Description: "Five stackable workout bands up to 150 lbs with handles and carry bag", Category: "fitness", IsPrimeEligible: true},
		},
	},
	{
		tag: "cooking",
		entries: []domain.CatalogEntry{
			{ID: "B00004OCNS", Title: "Lodge 10.25 Inch Cast Iron Skillet", Price: "$29.90", ImageURL: "https://m.media-amazon.com/images/I/71skillet.jpg", Rating: 4.7, ReviewCount: 128450, Description: "Pre-seasoned American-made cast iron skillet for stovetop, oven, and campfire", Category: "cooking", IsPrimeEligible: true},
			{ID: "B077JBQZPX", Title: "ThermoPro TP19H Instant Read Meat Thermometer", Price: "$16.99", ImageURL: "https://m.media-amazon.com/images/I/61thermo.jpg", Rating: 4.6, ReviewCount: 94210, Description: "Waterproof digital cooking thermometer with 3-second readout and backlight", Category: "cooking", IsPrimeEligible: true},
			{ID: "B07YBLC9SR", Title: "Spicewalla Essential Spices 6-Pack Gift Set", Price: "$34.99", ImageURL: "https://m.media-amazon.com/images/I/61spices.jpg", Rating: 4.5, ReviewCount: 4820, Description: "Small-batch kitchen staples collection in a giftable kraft box", Category: "cooking", IsPrimeEligible: false},
			{ID: "B09LVSPKW7", Title: "Bamboo Cutting Board Set with Juice Grooves", Price: "$24.97", ImageURL: "https://m.media-amazon.com/images/I/71board.jpg", Rating: 4.4, ReviewCount: 21340, Description: "Three-piece organic bamboo chopping board set with easy-grip handles", Category: "cooking", IsPrimeEligible: true},
		},
	},
	{
		tag: "home",
		entries: []domain.CatalogEntry{
			{ID: "B07GZFM3JM", Title: "Capri Blue Volcano Scented Candle", Price: "$38.00", ImageURL: "https://m.media-amazon.com/images/I/51candle.jpg", Rating: 4.6, ReviewCount: 15230, Description: "Signature tropical fruit and sugared citrus candle in an iridescent jar, 85 hour burn", Category: "home", IsPrimeEligible: true},
			{ID: "B08QLYZV5K", Title: "Barnwood Picture Frame Collage Set of 4", Price: "$32.99", ImageURL: "https://m.media-amazon.com/images/I/61frames.jpg", Rating: 4.4, ReviewCount: 7210, Description: "Rustic distressed wood gallery frames for 8x10 photos with easel backs", Category: "home", IsPrimeEligible: true},
			{ID: "B093TFLVPT", Title: "Ceramic Self-Watering Herb Planter Trio", Price: "$42.00", ImageURL: "https://m.media-amazon.com/images/I/61planters.jpg", Rating: 4.3, ReviewCount: 3840, Description: "Windowsill planters with water reservoirs for basil, mint, and rosemary", Category: "home", IsPrimeEligible: true},
			{ID: "B01GFJWHZ0", Title: "Chunky Knit Throw Blanket, Oatmeal", Price: "$49.99", ImageURL: "https://m.media-amazon.com/images/I/71blanket.jpg", Rating: 4.5, ReviewCount: 26710, Description: "Handmade-look chunky knit blanket, 50x60 inches, machine washable", Category: "home", IsPrimeEligible: true},
		},
	},
	{
		tag: "art",
		entries: []domain.CatalogEntry{
			{ID: "B001E6C1BS", Title: "Prismacolor Premier Colored Pencils 72-Count", Price: "$64.99", ImageURL: "https://m.media-amazon.com/images/I/71pencils.jpg", Rating: 4.8, ReviewCount: 48230, Description: "Soft-core artist pencils with rich pigment for blending and shading", Category: "art", IsPrimeEligible: true},
			{ID: "B07VMVSK9P", Title: "Arteza Watercolor Paint Set, 36 Vibrant Colors", Price: "$32.99", ImageURL: "https://m.media-amazon.com/images/I/71watercolor.jpg", Rating: 4.5, ReviewCount: 19240, Description: "Premium watercolor half-pans in a metal tin with water brush included", Category: "art", IsPrimeEligible: true},
			{ID: "B08Z7QGJMK", Title: "Tabletop Sketching Easel with Storage Drawer", Price: "$45.99", ImageURL: "https://m.media-amazon.com/images/I/61easel.jpg", Rating: 4.4, ReviewCount: 5120, Description: "Adjustable beechwood easel for sketching and display with art supply drawer", Category: "art", IsPrimeEligible: true},
			{ID: "B0B6P4HTXS", Title: "Pottery Wheel Starter Kit for Beginners", Price: "$89.99", ImageURL: "https://m.media-amazon.com/images/I/61pottery.jpg", Rating: 4.2, ReviewCount: 2410, Description: "Compact pottery wheel with clay, tools, and instructions for home studios", Category: "art", IsPrimeEligible: false},
		},
	},
	{
		tag: "music",
		entries: []domain.CatalogEntry{
			{ID: "B09CVPH1DL", Title: "Audio-Technica AT-LP60X Turntable", Price: "$149.00", ImageURL: "https://m.media-amazon.com/images/I/71turntable.jpg", Rating: 4.6, ReviewCount: 23140, Description: "Fully automatic belt-drive vinyl turntable with built-in phono preamp", Category: "music", IsPrimeEligible: true},
			{ID: "B0863FR3S9", Title: "Sony WH-1000XM4 Noise Canceling Headphones", Price: "$278.00", ImageURL: "https://m.media-amazon.com/images/I/71sonyxm4.jpg", Rating: 4.7, ReviewCount: 61230, Description: "Industry-leading wireless noise canceling headphones with 30-hour battery", Category: "music", IsPrimeEligible: true},
			{ID: "B07BR8SLG3", Title: "Fender Acoustic Guitar Starter Pack", Price: "$199.99", ImageURL: "https://m.media-amazon.com/images/I/61fender.jpg", Rating: 4.5, ReviewCount: 8240, Description: "Full-size dreadnought acoustic with gig bag, tuner, strap, and picks", Category: "music", IsPrimeEligible: false},
			{ID: "B0921VF9ZN", Title: "Vinyl Record Display Shelf Set of 6", Price: "$25.99", ImageURL: "https://m.media-amazon.com/images/I/61vinylshelf.jpg", Rating: 4.4, ReviewCount: 11320, Description: "Floating wall shelves for showing off now-playing album covers", Category: "music", IsPrimeEligible: true},
		},
	},
	{
		tag: "gift",
		entries: []domain.CatalogEntry{
			{ID: "B07W57LK4V", Title: "Cozy Sherpa Wearable Blanket Hoodie", Price: "$29.99", ImageURL: "https://m.media-amazon.com/images/I/61hoodie.jpg", Rating: 4.6, ReviewCount: 151230, Description: "Oversized fleece blanket hoodie with giant pocket, one size fits all", Category: "gift", IsPrimeEligible: true},
			{ID: "B084WZXLRM", Title: "Gourmet Chocolate Truffle Gift Box, 24 Piece", Price: "$33.95", ImageURL: "https://m.media-amazon.com/images/I/71truffles.jpg", Rating: 4.5, ReviewCount: 19840, Description: "Assorted handcrafted chocolate truffles in a ribbon-wrapped keepsake box", Category: "gift", IsPrimeEligible: true},
			{ID: "B08XYRDHTQ", Title: "Sunset Projection Lamp with Remote", Price: "$22.99", ImageURL: "https://m.media-amazon.com/images/I/51sunsetlamp.jpg", Rating: 4.3, ReviewCount: 28740, Description: "Rotating mood lamp projecting golden-hour sunset tones for photos and decor", Category: "gift", IsPrimeEligible: true},
			{ID: "B01BV14OWA", Title: "World Scratch-Off Travel Map Poster", Price: "$24.99", ImageURL: "https://m.media-amazon.com/images/I/81scratchmap.jpg", Rating: 4.6, ReviewCount: 42310, Description: "Gold-foil scratch map with detailed cartography for tracking adventures", Category: "gift", IsPrimeEligible: true},
			{ID: "B09KXQZ8F4", Title: "Personalized Star Map Night Sky Print", Price: "$39.99", ImageURL: "https://m.media-amazon.com/images/I/61starmap.jpg", Rating: 4.7, ReviewCount: 9210, Description: "Custom framed print of the night sky from any date and location", Category: "gift", IsPrimeEligible: false},
		},
	},
}
