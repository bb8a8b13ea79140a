// Package navigation builds the link set the storefront header renders.
package navigation

import (
	"sync"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
)

type RouteDescriptor struct {
	Dashboard string `json:"dashboard"`
	Profile   string `json:"profile"`
}

var (
	loggedOutRoutes = RouteDescriptor{Dashboard: "/login", Profile: "/login"}
	unknownRoutes   = RouteDescriptor{Dashboard: "/", Profile: "/"}

	roleRoutes = map[models.Role]RouteDescriptor{
		models.RoleCustomer: {Dashboard: "/customer-dashboard", Profile: "/customer-dashboard"},
		models.RoleChef:     {Dashboard: "/chef-dashboard", Profile: "/chef-dashboard/settings"},
		models.RoleRider:    {Dashboard: "/rider-dashboard", Profile: "/rider-dashboard/settings"},
		models.RoleAdmin:    {Dashboard: "/admin-dashboard", Profile: "/admin-dashboard/settings"},
	}
)

// RoutesFor resolves the dashboard and profile targets. A nil user gets the login page.
func RoutesFor(user *models.Claims) RouteDescriptor {
	if user == nil {
		return loggedOutRoutes
	}

	if routes, ok := roleRoutes[user.Role]; ok {
		return routes
	}

	return unknownRoutes
}

// AuthState answers who is browsing. Authenticated is false for a known user whose
// session is no longer valid.
type AuthState interface {
	Session() (user *models.Claims, authenticated bool)
}

type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Account struct {
	FullName string      `json:"fullname,omitempty"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

type Links struct {
	Primary         []Link          `json:"primary"`
	Cart            *Link           `json:"cart,omitempty"`
	CartBadge       int             `json:"cartBadge,omitempty"`
	RegisterKitchen *Link           `json:"registerKitchen,omitempty"`
	Login           *Link           `json:"login,omitempty"`
	Account         *Account        `json:"account,omitempty"`
	Routes          RouteDescriptor `json:"routes"`
	Authenticated   bool            `json:"authenticated"`
}

// Shell reads the auth state once and reuses the answer for every link it builds.
type Shell struct {
	auth AuthState

	once          sync.Once
	user          *models.Claims
	authenticated bool
}

func NewShell(auth AuthState) *Shell {
	return &Shell{auth: auth}
}

func (s *Shell) session() (*models.Claims, bool) {
	s.once.Do(func() {
		if s.auth != nil {
			s.user, s.authenticated = s.auth.Session()
		}
	})

	return s.user, s.authenticated
}

func (s *Shell) Links(cartItems int) Links {

	user, authenticated := s.session()

	links := Links{
		Primary: []Link{
			{Label: "Home", Path: "/"},
			{Label: "Kitchens", Path: "/kitchen"},
			{Label: "About", Path: "/about"},
		},
		Routes:        RoutesFor(user),
		Authenticated: authenticated,
	}

	registerKitchen := &Link{Label: "Register your Kitchen", Path: "/chef-register"}

	if authenticated {
		links.Cart = &Link{Label: "Cart", Path: "/cart"}
		if cartItems > 0 {
			links.CartBadge = cartItems
		}

		links.RegisterKitchen = registerKitchen

		if user != nil {
			links.Account = &Account{FullName: user.FullName, Email: user.Email, Role: user.Role}
		}

		return links
	}

	if user == nil || user.Role != models.RoleChef {
		links.RegisterKitchen = registerKitchen
	}

	links.Login = &Link{Label: "Log in", Path: "/login"}

	return links
}
