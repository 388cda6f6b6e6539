package domain

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Options is the immutable configuration of a single overlay run.
type Options struct {
	Service     string
	ClusterRepo string
	TargetImage string
	Namespace   string
	Tag         string
	Token       string
	Branch      string
	WorkDir     string
	Flux        bool
	DryRun      bool
	Built       bool
}

// Image returns the fully qualified image reference deployed to the overlay.
func (o Options) Image() string {
	return o.TargetImage + ":" + o.Tag
}

// RepositoryCoordinates splits ClusterRepo into its owner and name.
func (o Options) RepositoryCoordinates() (string, string, error) {
	owner, name, found := strings.Cut(o.ClusterRepo, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", &ConfigError{Reason: fmt.Sprintf("cluster repo '%s' must have the form owner/name", o.ClusterRepo)}
	}
	return owner, name, nil
}

// MissingRequired lists the flag names of required values that are empty.
// The token is only required when the overlay is committed.
func (o Options) MissingRequired() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"service", o.Service},
		{"cluster-repo", o.ClusterRepo},
		{"target-image", o.TargetImage},
		{"namespace", o.Namespace},
		{"tag", o.Tag},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if !o.DryRun && o.Token == "" {
		missing = append(missing, "token")
	}
	return missing
}

func (o Options) Validate() error {
	if missing := o.MissingRequired(); len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}

	if _, _, err := o.RepositoryCoordinates(); err != nil {
		return err
	}

	if errs := validation.IsDNS1123Label(o.Namespace); len(errs) > 0 {
		return &ConfigError{Reason: fmt.Sprintf("namespace '%s' is invalid: %s", o.Namespace, strings.Join(errs, "; "))}
	}

	named, err := reference.ParseNormalizedNamed(o.TargetImage)
	if err != nil {
		return &ConfigError{Reason: fmt.Sprintf("target image '%s' is invalid: %v", o.TargetImage, err)}
	}
	if !reference.IsNameOnly(named) {
		return &ConfigError{Reason: fmt.Sprintf("target image '%s' must not carry a tag or digest, use --tag instead", o.TargetImage)}
	}

	if o.Built && !o.DryRun {
		return &ConfigError{Reason: "--built only applies together with --dry-run"}
	}

	return nil
}

// ConfigError reports missing or malformed run configuration.
type ConfigError struct {
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required arguments: %v", e.Missing)
	}
	return e.Reason
}
