package store

// Keys of the values the kiosk keeps in its [KeyValueStore].
const (
	// KeyAccounts holds a JSON array with every registered account.
	KeyAccounts = "accounts"
	// KeySession holds the logged-in account as a one-element JSON array.
	KeySession = "user"
	// KeySelectedArticle holds the JSON article last opened by the user.
	KeySelectedArticle = "selectedArticle"
)
