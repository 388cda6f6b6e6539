package template

import "fmt"

const ServiceFileName = "service"

type ServiceManifest struct {
	Kind       string      `yaml:"kind"`
	APIVersion string      `yaml:"apiVersion"`
	Metadata   metadata    `yaml:"metadata"`
	Spec       ServiceSpec `yaml:"spec"`
}

type ServiceSpec struct {
	Type         string `yaml:"type"`
	ExternalName string `yaml:"externalName"`
}

// ServiceStub patches a supporting service into an ExternalName service that
// resolves to the instance running in the default namespace.
type ServiceStub struct {
	overlay
}

func NewServiceStub(service, namespace string) *ServiceStub {
	return &ServiceStub{overlay{service: service, namespace: namespace}}
}

func (s *ServiceStub) Kind() Kind {
	return KindServiceStub
}

func (s *ServiceStub) FileName() string {
	return ServiceFileName
}

func (s *ServiceStub) Path() string {
	return joinPath(s.Directory(), s.FileName())
}

// ExternalName is the cluster DNS name the stub points at.
func (s *ServiceStub) ExternalName() string {
	return fmt.Sprintf("%s.default.svc.cluster.local", s.service)
}

func (s *ServiceStub) Manifest() any {
	return ServiceManifest{
		Kind:       "Service",
		APIVersion: "v1",
		Metadata:   metadata{Name: s.service},
		Spec: ServiceSpec{
			Type:         "ExternalName",
			ExternalName: s.ExternalName(),
		},
	}
}
