package classify

// ProtectedLabel is the one label later groups must not overwrite. Campus
// vending descriptions often contain substrings that also hit restaurant
// patterns, so the protected group runs first and is re-asserted last.
const ProtectedLabel = "Vending Machine"

func amt(v float64) *float64 { return &v }

// vendingPatterns denote campus vending and refreshment machines.
var vendingPatterns = []string{
	"AMK MSU POD UNION",
	"AMK MSU POD",
	"AMK POD",
	"AMK MSU EINSTEINS",
	"AMK MSU GRIFFIS",
	"AMK MSU PANDA", // campus vending, not Panda Express restaurant
	"CTLP*REFRESHMENTS INC",
	"CTLP*REFRESH",
	"COCA COLA CLARK STARKVIL",
	"COCA COLA CLARK STARKV",
	"COCA COLA SOUTH METRO",
	"CTLP*GREENSBORO VENDIN",
	"365 MARKET K",
}

// gasStationPatterns cover the gas-station brands split by the $30
// threshold: under it the purchase is snacks/drinks, at or over it a
// fill-up.
var gasStationPatterns = []string{
	"SHELL",
	"LOVE'S",
	"LOVE S",
	"BUC-EE",
	"BUCEE",
	"EXXON",
	"CHEVRON",
	"MARATHON",
	"MURPHY",
	"QT ", // QuikTrip
	"QUIKTRIP",
	"PILOT",
	"CIRCLE K",
	"SPRINT MART",
	"76 - DEES",
	"76 DEES",
	"TEXACO",
	"BP#",
	"ON THE WAY",
}

// DefaultGroups returns the built-in classification table. Order is load
// bearing: the protected vending group runs first, the threshold group
// splits gas-station activity by amount, the merchant list relies on later
// entries overriding earlier ones, and the final group re-asserts the
// protected label no matter what happened in between.
func DefaultGroups() []Group {
	return []Group{
		{
			Name: "protected",
			Rules: []Rule{
				{Patterns: vendingPatterns, Label: ProtectedLabel},
			},
		},
		{
			Name: "utilities",
			Rules: []Rule{
				{Patterns: []string{"SIMPLEBILLS", "SIMPLE BILLS"}, Label: "Electricity"},
			},
		},
		{
			Name: "fuel-threshold",
			Rules: []Rule{
				{Patterns: gasStationPatterns, Amount: &AmountRange{Max: amt(30)}, Label: "Gas Station Indiscretion"},
				{Patterns: gasStationPatterns, Amount: &AmountRange{Min: amt(30)}, Label: "Gasoline"},
			},
		},
		{
			Name:      "merchants",
			SkipLabel: ProtectedLabel,
			Rules: []Rule{
				{Patterns: []string{"WALMART", "WAL-MART", "WM SUPERCENTER", "WALMART.COM"}, Label: "Walmart"},

				// Books & reading
				{Patterns: []string{"KINDLE"}, Label: "Books (Kindle)"},
				{Patterns: []string{"MCNALLY JACKSON"}, Label: "Books"},

				// Streaming & subscriptions
				{Patterns: []string{"NETFLIX"}, Label: "Netflix"},
				{Patterns: []string{"DISNEY PLUS", "DISNEY+"}, Label: "Disney+"},
				{Patterns: []string{"YOUTUBE"}, Label: "YouTube Premium"},
				{Patterns: []string{"GOOGLE *ONE", "GOOGLE ONE"}, Label: "Google One"},
				{Patterns: []string{"HINGE"}, Label: "Hinge"},
				{Patterns: []string{"APPLE.COM"}, Label: "Apple"},

				// Professional services
				{Patterns: []string{"LINKEDIN"}, Label: "LinkedIn Premium"},
				{Patterns: []string{"STP*V*RESUME", "RESUMEEXAMPLE", "RESUME-EXAMPLE"}, Label: "Resume Services"},
				{Patterns: []string{"ATLYS"}, Label: "Visa Services (Atlys)"},
				{Patterns: []string{"MSDPS"}, Label: "DMV/DPS"},

				// API & cloud costs
				{Patterns: []string{"GOOGLE *CLOUD", "GOOGLE CLOUD"}, Label: "API Costs (Google Cloud)"},
				{Patterns: []string{"GOOGLE COLAB", "COLAB"}, Label: "API Costs (Google Colab)"},
				{Patterns: []string{"AWS", "AMAZON WEB SERVICES"}, Label: "API Costs (AWS)"},
				{Patterns: []string{"ELEVENLABS", "ELEVEN LABS"}, Label: "API Costs (ElevenLabs)"},

				// Transportation
				{Patterns: []string{"UBER *TRIP"}, Label: "Uber Taxi"},
				{Patterns: []string{"PAYPAL *LYFT", "LYFT"}, Label: "Lyft"},
				{Patterns: []string{"MTA*NYCT", "OMNY"}, Label: "NYC Transit"},
				{Patterns: []string{"BIRD APP"}, Label: "Bird Scooter"},
				{Patterns: []string{"HNYFERRYIIL", "FERRY"}, Label: "Ferry"},

				// Clothing & retail
				{Patterns: []string{"MARSHALLS"}, Label: "Clothes (Marshalls)"},
				{Patterns: []string{"CENTURY 21"}, Label: "Clothes (Century 21)"},
				{Patterns: []string{"H&M "}, Label: "Clothes (H&M)"},
				{Patterns: []string{"NIKE", "KLARNA*NIKE", "KLARNA* NIKE"}, Label: "Clothes (Nike)"},
				{Patterns: []string{"FIVE BELOW"}, Label: "Five Below"},

				// Groceries & supermarkets
				{Patterns: []string{"KROGER"}, Label: "Grocery (Kroger)"},
				{Patterns: []string{"ALDI"}, Label: "Grocery (Aldi)"},
				{Patterns: []string{"PATEL BROTHERS"}, Label: "Grocery (Patel Brothers)"},
				{Patterns: []string{"B & W DELI"}, Label: "Deli/Grocery (NYC)"},

				// Other shopping
				{Patterns: []string{"DOLLAR-GENERAL", "DOLLAR GENERAL"}, Label: "Dollar General"},
				{Patterns: []string{"TARGET"}, Label: "Target"},
				{Patterns: []string{"MICRO CENTER"}, Label: "Electronics (Micro Center)"},
				{Patterns: []string{"NYC GIFTS"}, Label: "NYC Gift Shop"},
				{Patterns: []string{"WH SMITH"}, Label: "WHSmith (Airport)"},
				{Patterns: []string{"BOOTS"}, Label: "Boots (UK Pharmacy)"},
				{Patterns: []string{"MAFES SALES"}, Label: "MSU MAFES Store"},
				{Patterns: []string{"NASSAU STREET"}, Label: "Nassau Street Store"},

				// Services
				{Patterns: []string{"US MOBILE", "USMOBILE"}, Label: "Phone Service"},
				{Patterns: []string{"TOGGLE INSURANCE"}, Label: "Renters Insurance"},
				{Patterns: []string{"MOLINA HEALTH", "AMBETTER", "WELLCARE"}, Label: "Health Insurance"},
				{Patterns: []string{"UPS STORE"}, Label: "Shipping (UPS)"},
				{Patterns: []string{"SPORT CLIPS"}, Label: "Haircut"},
				{Patterns: []string{"COPY COW"}, Label: "Printing"},
				{Patterns: []string{"PEARSON"}, Label: "Textbooks (Pearson)"},
				{Patterns: []string{"MSU STUDENT HEALTH"}, Label: "MSU Health Center"},
				{Patterns: []string{"MSU CAMPUS"}, Label: "MSU Campus"},
				{Patterns: []string{"HCC MEDICAL", "HCCMEDICAL"}, Label: "Medical Payment"},
				{Patterns: []string{"MIDTOWN WASH"}, Label: "Car Wash"},
				{Patterns: []string{"GREENE ST DECK"}, Label: "Parking"},
				{Patterns: []string{"SOLIDGATE"}, Label: "Online Service"},
				{Patterns: []string{"BICYCLE REP"}, Label: "Bicycle Repair"},

				// Travel
				{Patterns: []string{"VIRGIN ATLANTIC"}, Label: "Flight (Virgin Atlantic)"},
				{Patterns: []string{"CHASE TRAVEL", "TRIPCHRG"}, Label: "Chase Travel"},
				{Patterns: []string{"SUPER 8"}, Label: "Hotel (Super 8)"},

				// Entertainment
				{Patterns: []string{"UEC THEATRE"}, Label: "Movie Theater"},
				{Patterns: []string{"TOPGOLF"}, Label: "TopGolf"},

				{Patterns: []string{"MICROSOFT"}, Label: "Microsoft"},
				{Patterns: []string{"ALIPAY"}, Label: "Alipay Transfer"},

				// NYC halal carts and restaurants
				{Patterns: []string{"HALAL", "BARHOSHA", "HOODA", "YASSO", "CAIRO"}, Label: "NYC Halal Food"},

				// Restaurants, coffee, delivery. Order matters: "DOMINO'S
				// PIZZA" must end up as Pizza via the later entry.
				{Patterns: []string{"WENDYS", "WENDY'S", "WENDY S"}, Label: "Wendy's"},
				{Patterns: []string{"MCDONALD"}, Label: "McDonald's"},
				{Patterns: []string{"TACO BELL"}, Label: "Taco Bell"},
				{Patterns: []string{"BURGER KING"}, Label: "Burger King"},
				{Patterns: []string{"CHICK-FIL-A", "CHICKFILA", "CHICK FIL"}, Label: "Chick-fil-A"},
				{Patterns: []string{"RAISING CANE"}, Label: "Raising Cane's"},
				{Patterns: []string{"COOK OUT", "COOKOUT"}, Label: "Cook Out"},
				{Patterns: []string{"WAFFLE HOUSE"}, Label: "Waffle House"},
				{Patterns: []string{"CHILIS", "CHILI'S", "CHILI S"}, Label: "Chili's"},
				{Patterns: []string{"BUFFALO", "BUFFALOWI"}, Label: "Buffalo Wild Wings"},
				{Patterns: []string{"ANDAMAN THAI"}, Label: "Thai Restaurant"},
				{Patterns: []string{"PITA PIT"}, Label: "Pita Pit"},
				{Patterns: []string{"DOMINO", "DOMINOS"}, Label: "Domino's"},
				{Patterns: []string{"PIZZA", "LITTLE ITALY"}, Label: "Pizza"},
				{Patterns: []string{"STARBUCKS"}, Label: "Starbucks"},
				{Patterns: []string{"HIGH GROUND COFFEE"}, Label: "High Ground Coffee"},
				{Patterns: []string{"DUNKIN"}, Label: "Dunkin"},
				{Patterns: []string{"DD *DOORDASH", "DOORDASH"}, Label: "DoorDash"},
				{Patterns: []string{"GRUBHUB"}, Label: "Grubhub"},
				{Patterns: []string{"UBER *EATS", "UBER EATS", "UBEREATS", "UBER   *EATS"}, Label: "Uber Eats"},
				{Patterns: []string{"PANDA EXPRESS", "TECH DINING-PANDA"}, Label: "Panda Express"},
				{Patterns: []string{"BOARDTOWN"}, Label: "Boardtown Pies"},
				{Patterns: []string{"DAVES DARK HORSE"}, Label: "Dave's Dark Horse"},
				{Patterns: []string{"TAXI SHOP CAF"}, Label: "Taxi Shop Café"},
				{Patterns: []string{"RETAG FOOD"}, Label: "Food Vendor"},
			},
		},
		{
			Name: "composite",
			Rules: []Rule{
				// Broad Amazon first, narrow Prime second so the narrow
				// rule wins on overlap; Kindle and AWS stay with their
				// merchant-group labels via the exclusions.
				{Patterns: []string{"AMAZON"}, Exclude: []string{"PRIME", "KINDLE", "WEB SERVICES"}, Label: "Amazon Shopping"},
				{Patterns: []string{"AMAZON PRIME"}, Label: "Amazon Prime"},
				// Generic Google payments, only when nothing else labeled
				// the row.
				{Patterns: []string{"PAYPAL *GOOGLE"}, OnlyUnlabeled: true, Label: "Google Services"},
			},
		},
		{
			Name: "reassert",
			Rules: []Rule{
				{
					Patterns: []string{
						"AMK MSU",
						"AMK POD",
						"CTLP", // all CTLP descriptions are vending machines
						"COCA COLA CLARK",
						"COCA COLA SOUTH",
						"365 MARKET K",
					},
					Label: ProtectedLabel,
				},
			},
		},
	}
}
