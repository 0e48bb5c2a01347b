package advisor

// keywordRule maps a category to the lowercase substrings that vote for it.
// Slice order is the tie-break order for equal scores.
type keywordRule struct {
	category Category
	keywords []string
}

var useCaseKeywords = []keywordRule{
	{CategoryWebApplication, []string{"web", "website", "blog", "cms", "portal"}},
	{CategoryEcommerce, []string{"ecommerce", "store", "shop", "product", "cart", "checkout", "payment"}},
	{CategoryMarketplace, []string{"marketplace", "platform", "seller", "buyer", "vendor"}},
	{CategorySocial, []string{"social", "feed", "post", "follower", "like", "comment", "share"}},
	{CategoryMobileBackend, []string{"mobile", "app", "ios", "android", "push notification"}},
	{CategoryAPI, []string{"api", "endpoint", "rest", "graphql", "webhook"}},
	{CategoryRealTime, []string{"real-time", "realtime", "chat", "messaging", "live", "websocket"}},
	{CategoryFileStorage, []string{"file", "upload", "photo", "image", "video", "document", "storage"}},
	{CategoryAuthentication, []string{"auth", "login", "signup", "user", "password", "oauth", "sso"}},
	{CategoryAnalytics, []string{"analytics", "tracking", "metrics", "dashboard", "reporting"}},
}
