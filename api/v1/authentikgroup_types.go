package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AuthentikGroupSpec defines the desired state of a group hosted inside an
// Authentik instance.
type AuthentikGroupSpec struct {
	// +kubebuilder:validation:MinLength=1
	AuthentikInstance string `json:"authentikInstance"`

	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// +optional
	Superuser bool `json:"superuser,omitempty"`

	// Parent group by Authentik group name.
	// +optional
	Parent string `json:"parent,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=akgroup

// AuthentikGroup is the Schema for a group in Authentik
type AuthentikGroup struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec AuthentikGroupSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// AuthentikGroupList contains a list of AuthentikGroup
type AuthentikGroupList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AuthentikGroup `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AuthentikGroup{}, &AuthentikGroupList{})
}
