package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PolicyMode is the policy engine mode evaluated on an application.
// +kubebuilder:validation:Enum=all;any
type PolicyMode string

const (
	PolicyModeAll PolicyMode = "all"
	PolicyModeAny PolicyMode = "any"
)

// AuthentikApplicationSpec defines the desired state of an application
// hosted inside an Authentik instance.
type AuthentikApplicationSpec struct {
	// +kubebuilder:validation:MinLength=1
	AuthentikInstance string `json:"authentikInstance"`

	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// +kubebuilder:validation:Pattern=`^[-a-zA-Z0-9_]+$`
	Slug string `json:"slug"`

	// Provider is the name of the provider backing this application. It must
	// resolve to exactly one live provider at reconcile time.
	// +kubebuilder:validation:MinLength=1
	Provider string `json:"provider"`

	// +optional
	Group string `json:"group,omitempty"`

	// +kubebuilder:default:=any
	// +optional
	PolicyMode PolicyMode `json:"policyMode,omitempty"`

	// +kubebuilder:default:={}
	// +optional
	UI AuthentikApplicationUI `json:"ui,omitempty"`
}

type AuthentikApplicationUI struct {
	// +optional
	NewTab bool `json:"newTab,omitempty"`
	// +optional
	URL string `json:"url,omitempty"`
	// +kubebuilder:default:="fa://fa-eye"
	// +optional
	Icon string `json:"icon,omitempty"`
	// +optional
	Description string `json:"description,omitempty"`
	// +optional
	Publisher string `json:"publisher,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=akapp

// AuthentikApplication is the Schema for an application in Authentik
type AuthentikApplication struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec AuthentikApplicationSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// AuthentikApplicationList contains a list of AuthentikApplication
type AuthentikApplicationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AuthentikApplication `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AuthentikApplication{}, &AuthentikApplicationList{})
}
