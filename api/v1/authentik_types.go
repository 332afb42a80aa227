package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AuthentikSpec defines the desired state of an Authentik instance
type AuthentikSpec struct {
	// SecretKey is the Django secret key for the instance. Generated on first
	// reconcile when left empty. Never rotated by the operator afterwards.
	// +optional
	SecretKey string `json:"secretKey,omitempty"`

	// +optional
	LogLevel string `json:"logLevel,omitempty"`

	// +kubebuilder:default:=gravatar
	// +optional
	Avatars string `json:"avatars,omitempty"`

	// +optional
	FooterLinks []AuthentikFooterLink `json:"footerLinks,omitempty"`

	// +kubebuilder:default:={}
	// +optional
	Image AuthentikImage `json:"image,omitempty"`

	// +optional
	Ingress *AuthentikIngress `json:"ingress,omitempty"`

	Postgres AuthentikPostgres `json:"postgres"`

	Redis AuthentikRedis `json:"redis"`

	// +optional
	Smtp *AuthentikSmtp `json:"smtp,omitempty"`
}

type AuthentikFooterLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type AuthentikImage struct {
	// +kubebuilder:default:="ghcr.io/goauthentik/server"
	// +optional
	Repository string `json:"repository,omitempty"`
	// +kubebuilder:default:=latest
	// +optional
	Tag string `json:"tag,omitempty"`
	// +kubebuilder:default:=IfNotPresent
	// +optional
	PullPolicy string `json:"pullPolicy,omitempty"`
}

type AuthentikIngress struct {
	// +optional
	ClassName string `json:"className,omitempty"`
	Rules     []AuthentikIngressRule `json:"rules"`
	// +optional
	TLS []AuthentikIngressTLS `json:"tls,omitempty"`
}

type AuthentikIngressRule struct {
	Host  string                 `json:"host"`
	Paths []AuthentikIngressPath `json:"paths"`
}

type AuthentikIngressPath struct {
	Path string `json:"path"`
	// +kubebuilder:default:=Prefix
	// +optional
	PathType string `json:"pathType,omitempty"`
}

type AuthentikIngressTLS struct {
	Hosts []string `json:"hosts"`
	// +optional
	SecretName string `json:"secretName,omitempty"`
}

type AuthentikPostgres struct {
	Host string `json:"host"`
	// +kubebuilder:default:=5432
	// +optional
	Port     int32  `json:"port,omitempty"`
	Database string `json:"database"`
	Username string `json:"username"`
	// +optional
	Password string `json:"password,omitempty"`
	// PasswordSecret references a Secret holding the password under
	// PasswordSecretKey, taking precedence over Password.
	// +optional
	PasswordSecret string `json:"passwordSecret,omitempty"`
	// +optional
	PasswordSecretKey string `json:"passwordSecretKey,omitempty"`
}

type AuthentikRedis struct {
	Host string `json:"host"`
	// +kubebuilder:default:=6379
	// +optional
	Port int32 `json:"port,omitempty"`
	// +optional
	Password string `json:"password,omitempty"`
}

type AuthentikSmtp struct {
	Host string `json:"host"`
	// +kubebuilder:default:=25
	// +optional
	Port int32  `json:"port,omitempty"`
	From string `json:"from"`
	// +optional
	Username string `json:"username,omitempty"`
	// +optional
	Password string `json:"password,omitempty"`
	// +optional
	UseTLS bool `json:"useTls,omitempty"`
	// +optional
	UseSSL bool `json:"useSsl,omitempty"`
	// +kubebuilder:default:=30
	// +optional
	Timeout int32 `json:"timeout,omitempty"`
}

// AuthentikStatus defines the observed state of an Authentik instance
type AuthentikStatus struct {
	// +optional
	Hidden bool `json:"hidden,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=ak

// Authentik is the Schema for a managed Authentik deployment
type Authentik struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AuthentikSpec   `json:"spec,omitempty"`
	Status AuthentikStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// AuthentikList contains a list of Authentik
type AuthentikList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Authentik `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Authentik{}, &AuthentikList{})
}
