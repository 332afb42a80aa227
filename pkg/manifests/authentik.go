package manifests

import (
	"encoding/json"
	"fmt"
	"strconv"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	akv1 "github.com/dsluijk/authentik-operator/api/v1"
	"github.com/dsluijk/authentik-operator/pkg/akapi"
	"github.com/dsluijk/authentik-operator/pkg/util"
)

const serverPort = 9000

// AuthentikDeployments builds the server and worker Deployments for an
// instance.
func AuthentikDeployments(ak *akv1.Authentik) []*appsv1.Deployment {
	return []*appsv1.Deployment{
		authentikDeployment(ak, "server"),
		authentikDeployment(ak, "worker"),
	}
}

func authentikDeployment(ak *akv1.Authentik, role string) *appsv1.Deployment {
	instance := ak.Name
	name := fmt.Sprintf("authentik-%s-%s", instance, role)

	container := corev1.Container{
		Name:            name,
		Image:           fmt.Sprintf("%s:%s", ak.Spec.Image.Repository, ak.Spec.Image.Tag),
		ImagePullPolicy: corev1.PullPolicy(ak.Spec.Image.PullPolicy),
		Args:            []string{role},
		Env:             authentikEnv(&ak.Spec),
	}

	// Only the server serves HTTP; the worker has nothing to probe.
	if role == "server" {
		container.Ports = []corev1.ContainerPort{{
			Name:          "http",
			ContainerPort: serverPort,
			Protocol:      corev1.ProtocolTCP,
		}}
		container.StartupProbe = probe("/-/health/live/", 30)
		container.LivenessProbe = probe("/-/health/live/", 2)
		container.ReadinessProbe = probe("/-/health/ready/", 2)
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       ak.Namespace,
			Labels:          InstanceLabels(instance, ak.Spec.Image.Tag, role),
			OwnerReferences: []metav1.OwnerReference{ownerRef("Authentik", ak)},
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: util.Int32Ptr(1),
			Selector: &metav1.LabelSelector{
				MatchLabels: MatchingLabels(instance, role),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: InstanceLabels(instance, ak.Spec.Image.Tag, role),
				},
				Spec: corev1.PodSpec{
					ServiceAccountName: AccountName(instance),
					EnableServiceLinks: util.BoolPtr(true),
					Containers:         []corev1.Container{container},
				},
			},
		},
	}
}

func probe(path string, failureThreshold int32) *corev1.Probe {
	return &corev1.Probe{
		FailureThreshold: failureThreshold,
		PeriodSeconds:    10,
		ProbeHandler: corev1.ProbeHandler{
			HTTPGet: &corev1.HTTPGetAction{
				Path: path,
				Port: intstr.FromString("http"),
			},
		},
	}
}

func authentikEnv(spec *akv1.AuthentikSpec) []corev1.EnvVar {
	footerLinks := spec.FooterLinks
	if footerLinks == nil {
		footerLinks = []akv1.AuthentikFooterLink{}
	}
	// Footer links are always valid JSON, the type has no unserializable
	// fields.
	footer, _ := json.Marshal(footerLinks)

	env := []corev1.EnvVar{
		{Name: "AUTHENTIK_SECRET_KEY", Value: spec.SecretKey},
		{Name: "AUTHENTIK_BOOTSTRAP_TOKEN", Value: akapi.TempAuthToken},
		{Name: "AUTHENTIK_FOOTER_LINKS", Value: string(footer)},
		{Name: "AUTHENTIK_DISABLE_STARTUP_ANALYTICS", Value: "true"},
		{Name: "AUTHENTIK_ERROR_REPORTING__ENABLED", Value: "false"},
		{Name: "AUTHENTIK_AVATARS", Value: spec.Avatars},
		{Name: "AUTHENTIK_POSTGRESQL__HOST", Value: spec.Postgres.Host},
		{Name: "AUTHENTIK_POSTGRESQL__PORT", Value: strconv.Itoa(int(spec.Postgres.Port))},
		{Name: "AUTHENTIK_POSTGRESQL__NAME", Value: spec.Postgres.Database},
		{Name: "AUTHENTIK_POSTGRESQL__USER", Value: spec.Postgres.Username},
		{Name: "AUTHENTIK_REDIS__HOST", Value: spec.Redis.Host},
		{Name: "AUTHENTIK_REDIS__PORT", Value: strconv.Itoa(int(spec.Redis.Port))},
	}

	if spec.LogLevel != "" {
		env = append(env, corev1.EnvVar{Name: "AUTHENTIK_LOG_LEVEL", Value: spec.LogLevel})
	}

	if spec.Postgres.PasswordSecret != "" && spec.Postgres.PasswordSecretKey != "" {
		env = append(env, corev1.EnvVar{
			Name: "AUTHENTIK_POSTGRESQL__PASSWORD",
			ValueFrom: &corev1.EnvVarSource{
				SecretKeyRef: &corev1.SecretKeySelector{
					LocalObjectReference: corev1.LocalObjectReference{Name: spec.Postgres.PasswordSecret},
					Key:                  spec.Postgres.PasswordSecretKey,
					Optional:             util.BoolPtr(false),
				},
			},
		})
	} else {
		env = append(env, corev1.EnvVar{Name: "AUTHENTIK_POSTGRESQL__PASSWORD", Value: spec.Postgres.Password})
	}

	if spec.Redis.Password != "" {
		env = append(env, corev1.EnvVar{Name: "AUTHENTIK_REDIS__PASSWORD", Value: spec.Redis.Password})
	}

	env = append(env, smtpEnv(spec.Smtp)...)
	return env
}

func smtpEnv(smtp *akv1.AuthentikSmtp) []corev1.EnvVar {
	if smtp == nil {
		return nil
	}

	return []corev1.EnvVar{
		{Name: "AUTHENTIK_EMAIL__HOST", Value: smtp.Host},
		{Name: "AUTHENTIK_EMAIL__PORT", Value: strconv.Itoa(int(smtp.Port))},
		{Name: "AUTHENTIK_EMAIL__FROM", Value: smtp.From},
		{Name: "AUTHENTIK_EMAIL__USERNAME", Value: smtp.Username},
		{Name: "AUTHENTIK_EMAIL__PASSWORD", Value: smtp.Password},
		{Name: "AUTHENTIK_EMAIL__USE_TLS", Value: strconv.FormatBool(smtp.UseTLS)},
		{Name: "AUTHENTIK_EMAIL__USE_SSL", Value: strconv.FormatBool(smtp.UseSSL)},
		{Name: "AUTHENTIK_EMAIL__TIMEOUT", Value: strconv.Itoa(int(smtp.Timeout))},
	}
}

// AuthentikService builds the ClusterIP Service fronting the server pods.
func AuthentikService(ak *akv1.Authentik) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            ServiceName(ak.Name),
			Namespace:       ak.Namespace,
			Labels:          InstanceLabels(ak.Name, ak.Spec.Image.Tag, "service"),
			OwnerReferences: []metav1.OwnerReference{ownerRef("Authentik", ak)},
		},
		Spec: corev1.ServiceSpec{
			Type: corev1.ServiceTypeClusterIP,
			Ports: []corev1.ServicePort{{
				Name:       "http",
				Port:       80,
				TargetPort: intstr.FromString("http"),
				Protocol:   corev1.ProtocolTCP,
			}},
			Selector: MatchingLabels(ak.Name, "server"),
		},
	}
}

// AuthentikIngress builds the Ingress for an instance. Only valid when
// spec.ingress is set.
func AuthentikIngress(ak *akv1.Authentik) *networkingv1.Ingress {
	ing := ak.Spec.Ingress

	var tls []networkingv1.IngressTLS
	for _, t := range ing.TLS {
		tls = append(tls, networkingv1.IngressTLS{
			Hosts:      t.Hosts,
			SecretName: t.SecretName,
		})
	}

	var rules []networkingv1.IngressRule
	for _, rule := range ing.Rules {
		var paths []networkingv1.HTTPIngressPath
		for _, path := range rule.Paths {
			pathType := networkingv1.PathType(path.PathType)
			paths = append(paths, networkingv1.HTTPIngressPath{
				Path:     path.Path,
				PathType: &pathType,
				Backend: networkingv1.IngressBackend{
					Service: &networkingv1.IngressServiceBackend{
						Name: ServiceName(ak.Name),
						Port: networkingv1.ServiceBackendPort{Name: "http"},
					},
				},
			})
		}

		rules = append(rules, networkingv1.IngressRule{
			Host: rule.Host,
			IngressRuleValue: networkingv1.IngressRuleValue{
				HTTP: &networkingv1.HTTPIngressRuleValue{Paths: paths},
			},
		})
	}

	built := &networkingv1.Ingress{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "networking.k8s.io/v1",
			Kind:       "Ingress",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:            IngressName(ak.Name),
			Namespace:       ak.Namespace,
			Labels:          InstanceLabels(ak.Name, ak.Spec.Image.Tag, "ingress"),
			OwnerReferences: []metav1.OwnerReference{ownerRef("Authentik", ak)},
		},
		Spec: networkingv1.IngressSpec{
			TLS:   tls,
			Rules: rules,
		},
	}

	if ing.ClassName != "" {
		built.Spec.IngressClassName = &ing.ClassName
	}

	return built
}
