package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AuthentikUserSpec defines the desired state of a user account hosted
// inside an Authentik instance.
type AuthentikUserSpec struct {
	// +kubebuilder:validation:MinLength=1
	AuthentikInstance string `json:"authentikInstance"`

	// +kubebuilder:validation:MinLength=1
	Username string `json:"username"`

	DisplayName string `json:"displayName"`

	// Password to set on the account. Generated when left empty. Changing
	// this after the password secret exists has no effect.
	// +optional
	Password string `json:"password,omitempty"`

	// +optional
	Email string `json:"email,omitempty"`

	// +kubebuilder:validation:MinLength=1
	Path string `json:"path"`

	// Groups the user should be a member of, by Authentik group name.
	// +optional
	Groups []string `json:"groups,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=akuser

// AuthentikUser is the Schema for a user account in Authentik
type AuthentikUser struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec AuthentikUserSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// AuthentikUserList contains a list of AuthentikUser
type AuthentikUserList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AuthentikUser `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AuthentikUser{}, &AuthentikUserList{})
}
