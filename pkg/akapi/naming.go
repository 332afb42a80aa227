package akapi

import "fmt"

const (
	// APIUser is the username of the service account the operator
	// provisions for itself inside every Authentik instance.
	APIUser = "ak-operator"

	// TempAuthToken is the well-known bootstrap token the Authentik image
	// is started with. It is only valid until the first restart after the
	// operator has provisioned its durable token.
	TempAuthToken = "AUTHENTIK_TEMP_AUTH_TOKEN"

	// OperatorTokenDescription is set on the durable token so admins know
	// not to remove it from the Authentik UI.
	OperatorTokenDescription = "Authentication token for the Authentik Operator. Do not delete!"
)

// ServiceGroupName is the superuser group owning the operator's service
// account in the given instance.
func ServiceGroupName(instance string) string {
	return fmt.Sprintf("akOperator %s service group", instance)
}

// TokenIdentifier is the identifier of the operator's durable API token in
// the given instance.
func TokenIdentifier(instance string) string {
	return fmt.Sprintf("%s-%s__operatortoken", APIUser, instance)
}

// ServiceAccountPasswordToken is the token identifier Authentik creates
// alongside a new service account. The operator removes it right after
// bootstrap since it never authenticates by password.
func ServiceAccountPasswordToken() string {
	return fmt.Sprintf("service-account-%s-password", APIUser)
}

// TokenSecretName is the Kubernetes Secret mirroring the durable token.
func TokenSecretName(instance string) string {
	return fmt.Sprintf("ak-%s-api-operatortoken", instance)
}
