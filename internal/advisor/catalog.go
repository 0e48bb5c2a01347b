package advisor

// Canonical service keys.
const (
	KeyCognito    = "cognito"
	KeyDynamoDB   = "dynamodb"
	KeyRDS        = "rds"
	KeyLambda     = "lambda"
	KeyAPIGateway = "api-gateway"
	KeyS3         = "s3"
	KeySES        = "ses"
	KeyCloudFront = "cloudfront"
	KeyAppSync    = "appsync"
)

// serviceTraits fixes the capability flags and complexity weight per service
// key, independent of the per-category rationale text.
var serviceTraits = map[string]struct {
	caps   Capabilities
	weight int
}{
	KeyCognito:    {Capabilities{Auth: true}, 2},
	KeyDynamoDB:   {Capabilities{Database: true}, 1},
	KeyRDS:        {Capabilities{Database: true}, 3},
	KeyLambda:     {Capabilities{Compute: true, Serverless: true}, 0},
	KeyAPIGateway: {Capabilities{API: true}, 0},
	KeyS3:         {Capabilities{Storage: true}, 0},
	KeySES:        {Capabilities{Email: true}, 0},
	KeyCloudFront: {Capabilities{CDN: true}, 0},
	KeyAppSync:    {Capabilities{API: true}, 0},
}

var serviceDisplayNames = map[string]string{
	KeyCognito:    "Amazon Cognito",
	KeyDynamoDB:   "Amazon DynamoDB",
	KeyRDS:        "Amazon RDS",
	KeyLambda:     "AWS Lambda",
	KeyAPIGateway: "Amazon API Gateway",
	KeyS3:         "Amazon S3",
	KeySES:        "Amazon SES",
	KeyCloudFront: "Amazon CloudFront",
	KeyAppSync:    "AWS AppSync",
}

var serviceRoles = map[string]string{
	KeyCognito:    "authentication",
	KeyDynamoDB:   "database",
	KeyRDS:        "database",
	KeyLambda:     "compute",
	KeyAPIGateway: "api",
	KeyS3:         "storage",
	KeySES:        "email",
	KeyCloudFront: "cdn",
	KeyAppSync:    "api",
}

func entry(key, rationale, usageExample string) ServiceEntry {
	traits := serviceTraits[key]
	return ServiceEntry{
		Key:              key,
		DisplayName:      serviceDisplayNames[key],
		Category:         serviceRoles[key],
		Rationale:        rationale,
		UsageExample:     usageExample,
		Capabilities:     traits.caps,
		complexityWeight: traits.weight,
	}
}

// serviceCatalog maps a project category (or detected feature) to its
// recommended services with contextual rationale. Slice order is the
// output order.
var serviceCatalog = map[Category][]ServiceEntry{
	CategoryEcommerce: {
		entry(KeyCognito,
			"Manages customer accounts, login/signup, and secure authentication for shoppers",
			"Customer registration, login, password reset, and session management"),
		entry(KeyDynamoDB,
			"Stores products, orders, shopping carts, and customer data with millisecond response times",
			"Product catalog with search, order history, real-time inventory tracking"),
		entry(KeyLambda,
			"Handles checkout logic, payment processing, order confirmation, and inventory updates",
			"Process payments with Stripe/PayPal, calculate shipping, apply discounts"),
		entry(KeyAPIGateway,
			"Provides secure REST APIs for product browsing, cart operations, and checkout",
			"API endpoints: /products, /cart, /checkout, /orders"),
		entry(KeyS3,
			"Stores product images, promotional banners, and invoices with 99.999999999% durability",
			"Product photos, category images, downloadable receipts"),
		entry(KeySES,
			"Sends order confirmations, shipping notifications, and promotional emails",
			"Transactional emails: order confirmation, shipping updates, password reset"),
		entry(KeyCloudFront,
			"Delivers product images and website assets globally with low latency",
			"Fast image loading worldwide, reduced S3 costs"),
	},
	CategorySocial: {
		entry(KeyCognito,
			"Manages user profiles, authentication, and social login (Google, Facebook)",
			"User signup/login, profile management, OAuth integration"),
		entry(KeyDynamoDB,
			"Stores posts, comments, likes, and follower relationships with fast queries",
			"User posts with timestamps, comment threads, follower/following lists"),
		entry(KeyLambda,
			"Generates personalized feeds, processes likes/comments, sends notifications",
			"Feed algorithm, notification triggers, content moderation"),
		entry(KeyAPIGateway,
			"REST APIs for posting, commenting, liking, and following users",
			"Endpoints: /posts, /comments, /likes, /follow"),
		entry(KeyS3,
			"Stores user-uploaded photos, videos, and profile pictures",
			"Photo uploads, video hosting, profile avatars"),
		entry(KeyCloudFront,
			"Delivers media content globally with low latency for better user experience",
			"Fast photo/video loading, reduced bandwidth costs"),
	},
	CategoryMarketplace: {
		entry(KeyCognito,
			"Separate authentication for buyers and sellers with role-based access",
			"Buyer/seller accounts, vendor verification, multi-role permissions"),
		entry(KeyDynamoDB,
			"Stores listings, bids, transactions, and seller profiles",
			"Product listings, bidding history, escrow transactions, seller ratings"),
		entry(KeyLambda,
			"Handles bidding logic, payment escrow, commission calculations, and notifications",
			"Bid processing, payment splits, seller payouts, dispute resolution"),
		entry(KeyAPIGateway,
			"APIs for listings, bidding, messaging between buyers/sellers",
			"Endpoints: /listings, /bids, /messages, /transactions"),
		entry(KeyS3,
			"Stores product images, seller documents, and transaction receipts",
			"Listing photos, seller verification docs, invoices"),
		entry(KeySES,
			"Sends bid notifications, transaction confirmations, and seller alerts",
			"Bid updates, sale confirmations, payout notifications"),
	},
	CategoryBlog: {
		entry(KeyS3,
			"Hosts your static blog website (HTML, CSS, JS) with high availability",
			"Static site hosting, article pages, images"),
		entry(KeyCloudFront,
			"Delivers your blog globally with fast load times and HTTPS",
			"Global content delivery, SSL certificate, DDoS protection"),
		entry(KeyLambda,
			"Handles dynamic features like comments, contact forms, and search",
			"Comment processing, email notifications, search indexing"),
		entry(KeyDynamoDB,
			"Stores comments, page views, and subscriber data",
			"Comment storage, analytics tracking, email subscribers"),
	},
	CategorySaaS: {
		entry(KeyCognito,
			"Multi-tenant authentication with organization isolation and SSO support",
			"Company accounts, team member access, SSO integration"),
		entry(KeyDynamoDB,
			"Stores tenant data, subscriptions, usage metrics with tenant isolation",
			"Customer data, subscription plans, usage tracking, billing"),
		entry(KeyLambda,
			"Handles business logic, API processing, and background jobs",
			"Data processing, scheduled tasks, webhook integrations"),
		entry(KeyAPIGateway,
			"Provides REST/GraphQL APIs with rate limiting and API key management",
			"Public API, webhook endpoints, third-party integrations"),
		entry(KeyS3,
			"Stores customer files, exports, and backups with encryption",
			"File uploads, data exports, automated backups"),
	},
	CategoryMobileBackend: {
		entry(KeyCognito,
			"Mobile-optimized authentication with social login and biometric support",
			"App login, Face ID/fingerprint, Google/Apple sign-in"),
		entry(KeyDynamoDB,
			"Stores app data with offline sync capabilities via AWS AppSync",
			"User preferences, app state, offline-first data"),
		entry(KeyLambda,
			"Backend API logic for mobile app features",
			"Data processing, push notification triggers, API logic"),
		entry(KeyAPIGateway,
			"RESTful APIs optimized for mobile with low latency",
			"Mobile API endpoints with caching"),
		entry(KeyS3,
			"Stores user-generated content like photos and videos from mobile",
			"Image uploads, video storage, app assets"),
	},
	CategoryAPI: {
		entry(KeyLambda,
			"Executes API logic without managing servers, auto-scales with traffic",
			"API endpoints, data transformations, integrations"),
		entry(KeyAPIGateway,
			"Manages API versioning, rate limiting, API keys, and documentation",
			"REST API with authentication, throttling, monitoring"),
		entry(KeyDynamoDB,
			"Fast NoSQL storage for API data with predictable performance",
			"API data storage, caching, session management"),
	},
	CategoryRealTime: {
		entry(KeyAppSync,
			"Real-time GraphQL subscriptions for live updates",
			"Live chat messages, real-time notifications, collaborative editing"),
		entry(KeyLambda,
			"Processes messages, broadcasts updates, and triggers notifications",
			"Message routing, presence detection, notification logic"),
		entry(KeyDynamoDB,
			"Stores chat history, user presence, and connection states",
			"Message persistence, online/offline status, conversation threads"),
	},
	CategoryAuthentication: {
		entry(KeyCognito,
			"Handles user authentication and authorization securely",
			"User signup, login, password management, MFA"),
	},
	CategoryEmail: {
		entry(KeySES,
			"Sends transactional and marketing emails reliably",
			"Email notifications, newsletters, alerts"),
	},
	CategoryFileStorage: {
		entry(KeyS3,
			"Stores user-uploaded files with 99.999999999% durability",
			"Document uploads, media storage, backups"),
	},
}

// defaultServices is the fallback set for project categories absent from the
// catalog; it covers the compute, API, database, and storage roles generically.
var defaultServices = []ServiceEntry{
	entry(KeyLambda,
		"Runs your application code without managing servers",
		"Backend logic, API processing, scheduled tasks"),
	entry(KeyAPIGateway,
		"Creates and manages REST APIs for your application",
		"API endpoints with authentication and monitoring"),
	entry(KeyDynamoDB,
		"Stores your application data with fast, predictable performance",
		"User data, application state, content storage"),
	entry(KeyS3,
		"Stores files, images, and static assets with high durability",
		"File uploads, static website hosting, backups"),
}

// baseCosts is the unscaled monthly USD range per service key.
var baseCosts = map[string]CostRange{
	KeyLambda:     {10, 50},
	KeyAPIGateway: {5, 30},
	KeyDynamoDB:   {5, 30},
	KeyS3:         {5, 20},
	KeyCognito:    {0, 25},
	KeySES:        {0, 10},
	KeyCloudFront: {10, 50},
	KeyAppSync:    {5, 40},
}

// defaultCostRange applies to unknown service keys.
var defaultCostRange = CostRange{5, 30}

var freeTiers = map[string]string{
	KeyLambda:     "1M requests + 400K GB-seconds",
	KeyAPIGateway: "1M requests (12 months)",
	KeyDynamoDB:   "25GB + 25 WCU/RCU",
	KeyS3:         "5GB storage",
	KeyCognito:    "50K MAU",
	KeySES:        "62K emails/month",
	KeyCloudFront: "1TB data transfer",
	KeyAppSync:    "250K query/mutation",
}

const defaultFreeTier = "Limited free tier"
