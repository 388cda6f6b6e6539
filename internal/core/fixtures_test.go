package core

import (
	"bytes"

	"overlay/internal/cli/output"
	"overlay/internal/core/domain"
	"overlay/internal/testutil"
)

const checkoutIngress = `apiVersion: networking.k8s.io/v1
kind: Ingress
metadata:
  name: checkout
spec:
  rules:
    - host: checkout.example.com
      http:
        paths:
          - path: /
            pathType: Prefix
            backend:
              service:
                name: checkout
                port:
                  number: 80
`

const cartIngress = `apiVersion: extensions/v1beta1
kind: Ingress
metadata:
  name: cart
spec:
  rules:
    - host: cart.example.com
      http:
        paths:
          - backend:
              serviceName: cart
              servicePort: 80
    - host: cart.internal.example.com
`

func testOptions() domain.Options {
	return domain.Options{
		Service:     "checkout",
		ClusterRepo: "acme/cluster",
		TargetImage: "registry/svc",
		Namespace:   "pr-42",
		Tag:         "abc1234",
		Token:       "secret",
	}
}

func testRepositoryFiles() map[string]string {
	return map[string]string{
		".flux.yaml":                    "version: 1\ncommandUpdated:\n  generators:\n    - command: kustomize build ./cart/overlays/staging\n",
		".github/workflows/ci.yaml":     "name: ci\n",
		"cart/base/deployment.yaml":     "kind: Deployment\n",
		"cart/base/ingress.yaml":        cartIngress,
		"cart/base/service.yaml":        "kind: Service\n",
		"checkout/base/deployment.yaml": "kind: Deployment\n",
		"checkout/base/ingress.yaml":    checkoutIngress,
		"checkout/base/service.yaml":    "kind: Service\n",
		"worker/base/deployment.yaml":   "kind: Deployment\n",
	}
}

func newTestRepository() *testutil.FakeManifestRepository {
	return testutil.NewFakeManifestRepository(testRepositoryFiles())
}

type testPrinter struct {
	*output.Printer
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestPrinter() testPrinter {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return testPrinter{Printer: output.NewPrinter(out, errOut), out: out, errOut: errOut}
}
