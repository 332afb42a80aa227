package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ClientType is the OAuth2 client type of a provider.
// +kubebuilder:validation:Enum=confidential;public
type ClientType string

const (
	ClientTypeConfidential ClientType = "confidential"
	ClientTypePublic       ClientType = "public"
)

// SubjectMode selects what is used as the OAuth2 subject claim.
// +kubebuilder:validation:Enum=hashed_user_id;user_username;user_email;user_upn
type SubjectMode string

const (
	SubjectModeHashedUserID SubjectMode = "hashed_user_id"
	SubjectModeUserUsername SubjectMode = "user_username"
	SubjectModeUserEmail    SubjectMode = "user_email"
	SubjectModeUserUpn      SubjectMode = "user_upn"
)

// IssuerMode selects how the issuer URL is derived.
// +kubebuilder:validation:Enum=global;per_provider
type IssuerMode string

const (
	IssuerModeGlobal      IssuerMode = "global"
	IssuerModePerProvider IssuerMode = "per_provider"
)

// AuthentikOAuthProviderSpec defines the desired state of an OAuth2
// provider hosted inside an Authentik instance.
type AuthentikOAuthProviderSpec struct {
	// +kubebuilder:validation:MinLength=1
	AuthentikInstance string `json:"authentikInstance"`

	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// Flow is the slug of the authorization flow to bind.
	// +kubebuilder:validation:MinLength=1
	Flow string `json:"flow"`

	ClientType ClientType `json:"clientType"`

	// ClientID is generated on first reconcile when left empty and never
	// rewritten afterwards.
	// +optional
	ClientID string `json:"clientId,omitempty"`

	// ClientSecret is generated on first reconcile when left empty and never
	// rewritten afterwards.
	// +optional
	ClientSecret string `json:"clientSecret,omitempty"`

	// Scopes by scope-mapping name. Each must resolve at reconcile time.
	Scopes []string `json:"scopes"`

	// +kubebuilder:validation:MinItems=1
	RedirectURIs []string `json:"redirectUris"`

	// +kubebuilder:default:="minutes=1"
	// +optional
	AccessCodeValidity string `json:"accessCodeValidity,omitempty"`

	// +kubebuilder:default:="days=30"
	// +optional
	TokenValidity string `json:"tokenValidity,omitempty"`

	// +kubebuilder:default:=true
	// +optional
	ClaimsInToken *bool `json:"claimsInToken,omitempty"`

	// SigningKey is the name of a certificate keypair with a private key.
	// +optional
	SigningKey string `json:"signingKey,omitempty"`

	// +kubebuilder:default:=hashed_user_id
	// +optional
	SubjectMode SubjectMode `json:"subjectMode,omitempty"`

	// +kubebuilder:default:=per_provider
	// +optional
	IssuerMode IssuerMode `json:"issuerMode,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=akoauth

// AuthentikOAuthProvider is the Schema for an OAuth2 provider in Authentik
type AuthentikOAuthProvider struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec AuthentikOAuthProviderSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// AuthentikOAuthProviderList contains a list of AuthentikOAuthProvider
type AuthentikOAuthProviderList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AuthentikOAuthProvider `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AuthentikOAuthProvider{}, &AuthentikOAuthProviderList{})
}
