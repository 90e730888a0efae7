package accounts

// Account is a registered shopper. Passwords are stored and compared in
// plain text: this is a demo with no server trust boundary, not an oversight
// to fix with hashing.
type Account struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// The one implicit admin identity. It is never stored in the account list;
// its email is reserved and login goes through the fixed one-time code.
const (
	AdminEmail    = "admin@geministore.com"
	AdminPassword = "123@123"
	AdminOTP      = "123456"

	adminFullName = "Store Admin"
)

// FirstName is what greeting messages use ("Welcome back, Ada!").
func (a Account) FirstName() string {
	for i := 0; i < len(a.FullName); i++ {
		if a.FullName[i] == ' ' {
			return a.FullName[:i]
		}
	}
	return a.FullName
}
