package akapi

// paginated is the envelope Authentik wraps every list response in.
type paginated[T any] struct {
	Pagination Pagination `json:"pagination"`
	Results    []T        `json:"results"`
}

type Pagination struct {
	Count int `json:"count"`
}

// User is an account inside Authentik. Groups holds group pks.
type User struct {
	Pk       int      `json:"pk"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	IsActive bool     `json:"is_active,omitempty"`
	Email    string   `json:"email,omitempty"`
	Path     string   `json:"path,omitempty"`
	Groups   []string `json:"groups"`
}

// Group is a group inside Authentik. Users holds member user pks.
type Group struct {
	Pk          string `json:"pk"`
	Name        string `json:"name"`
	IsSuperuser bool   `json:"is_superuser"`
	Parent      string `json:"parent,omitempty"`
	Users       []int  `json:"users"`
}

// Token is an API token inside Authentik.
type Token struct {
	Pk          string `json:"pk,omitempty"`
	Identifier  string `json:"identifier"`
	Intent      string `json:"intent"`
	User        int    `json:"user"`
	Description string `json:"description,omitempty"`
	Expiring    bool   `json:"expiring"`
}

// Flow is an authentication or authorization flow inside Authentik.
type Flow struct {
	Pk          string `json:"pk"`
	Slug        string `json:"slug"`
	Name        string `json:"name,omitempty"`
	Designation string `json:"designation,omitempty"`
}

// Stage is a single stage of a flow.
type Stage struct {
	Pk        string `json:"pk"`
	Name      string `json:"name"`
	Component string `json:"component,omitempty"`
}

// ScopeMapping maps an OAuth2 scope name onto claims.
type ScopeMapping struct {
	Pk        string `json:"pk"`
	Name      string `json:"name"`
	ScopeName string `json:"scope_name,omitempty"`
}

// Certificate is a certificate-key pair stored in Authentik.
type Certificate struct {
	Pk   string `json:"pk"`
	Name string `json:"name"`
}

// Provider is the component-agnostic view of a provider, as returned by the
// /providers/all/ endpoint.
type Provider struct {
	Pk        int    `json:"pk"`
	Name      string `json:"name"`
	Component string `json:"component,omitempty"`
}

// OAuthProvider is an OAuth2/OpenID provider. RedirectURIs is a
// newline-joined list on the wire.
type OAuthProvider struct {
	Pk                    int      `json:"pk,omitempty"`
	Name                  string   `json:"name"`
	AuthorizationFlow     string   `json:"authorization_flow"`
	PropertyMappings      []string `json:"property_mappings"`
	ClientType            string   `json:"client_type"`
	ClientID              string   `json:"client_id"`
	ClientSecret          string   `json:"client_secret"`
	AccessCodeValidity    string   `json:"access_code_validity"`
	TokenValidity         string   `json:"token_validity"`
	IncludeClaimsInIDToken bool    `json:"include_claims_in_id_token"`
	SigningKey            string   `json:"signing_key,omitempty"`
	RedirectURIs          string   `json:"redirect_uris"`
	SubMode               string   `json:"sub_mode"`
	IssuerMode            string   `json:"issuer_mode"`
}

// Application is an application inside Authentik. The provider_obj and
// meta_icon fields the server includes on reads are deliberately not
// modeled so that desired and live applications serialize comparably.
type Application struct {
	Pk               string `json:"pk,omitempty"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Provider         int    `json:"provider"`
	Group            string `json:"group,omitempty"`
	PolicyEngineMode string `json:"policy_engine_mode"`
	OpenInNewTab     bool   `json:"open_in_new_tab"`
	MetaLaunchURL    string `json:"meta_launch_url,omitempty"`
	MetaDescription  string `json:"meta_description,omitempty"`
	MetaPublisher    string `json:"meta_publisher,omitempty"`
}
