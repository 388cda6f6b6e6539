package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"overlay/internal/core/domain"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/apimachinery/pkg/util/validation"
)

type ConfigOption struct {
	Key         string
	Flag        string
	Shorthand   string
	Env         string
	Default     any
	Description string
}

const (
	KeyService     = "service"
	KeyClusterRepo = "cluster_repo"
	KeyTargetImage = "target_image"
	KeyNamespace   = "namespace"
	KeyTag         = "tag"
	KeyToken       = "token"
	KeyFlux        = "flux"
	KeyDryRun      = "dry_run"
	KeyBuilt       = "built"
	KeyBranch      = "branch"
	KeyWorkDir     = "work_dir"
)

// Keys fed only from the CI environment. They provide defaults for the
// namespace and the tag.
const (
	KeyHeadRef   = "github.head_ref"
	KeyCommitSHA = "github.sha"
)

const shortSHALength = 7

var CreateOptions = []ConfigOption{
	{Key: KeyService, Flag: "service", Shorthand: "s", Env: "SERVICE", Default: "", Description: "Service to deploy"},
	{Key: KeyClusterRepo, Flag: "cluster-repo", Shorthand: "r", Env: "CLUSTER_REPO", Default: "", Description: "GitHub repository holding the cluster manifests, as owner/name"},
	{Key: KeyTargetImage, Flag: "target-image", Shorthand: "i", Env: "TARGET_IMAGE", Default: "", Description: "Container image of the service, without tag"},
	{Key: KeyNamespace, Flag: "namespace", Shorthand: "n", Default: "", Description: "Desired namespace, or inferred from $GITHUB_HEAD_REF"},
	{Key: KeyTag, Flag: "tag", Shorthand: "t", Default: "", Description: "Image tag, or inferred from $GITHUB_SHA"},
	{Key: KeyToken, Flag: "token", Shorthand: "T", Env: "TOKEN", Default: "", Description: "GitHub access token"},
	{Key: KeyFlux, Flag: "flux", Env: "FLUX", Default: false, Description: "Also generate the .flux.yaml of the repository"},
	{Key: KeyDryRun, Flag: "dry-run", Env: "DRY_RUN", Default: false, Description: "Print the manifests instead of committing them"},
	{Key: KeyBuilt, Flag: "built", Env: "BUILT", Default: false, Description: "With --dry-run, print the kustomize build of every overlay"},
	{Key: KeyBranch, Flag: "branch", Env: "BRANCH", Default: "", Description: "Branch to commit to, defaults to the repository's default branch"},
	{Key: KeyWorkDir, Flag: "work-dir", Env: "WORK_DIR", Default: "", Description: "Scratch directory for --built, defaults to a temporary directory"},
}

var environmentOptions = []ConfigOption{
	{Key: KeyHeadRef, Env: "GITHUB_HEAD_REF", Default: ""},
	{Key: KeyCommitSHA, Env: "GITHUB_SHA", Default: ""},
}

var nonLabel = regexp.MustCompile(`[^a-z0-9-]`)

type Config struct {
	v *viper.Viper
}

// New reads .overlay.yaml from the working directory when present and binds
// the environment variables of every option.
func New() (*Config, error) {
	v := viper.New()

	for _, o := range append(CreateOptions, environmentOptions...) {
		v.SetDefault(o.Key, o.Default)
	}

	v.SetConfigName(".overlay")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !(errors.As(err, &notFoundErr) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for _, o := range append(CreateOptions, environmentOptions...) {
		if o.Env == "" {
			continue
		}
		if err := v.BindEnv(o.Key, o.Env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", o.Env, err)
		}
	}

	return &Config{v: v}, nil
}

// RegisterFlags adds a flag for every option to fs.
func RegisterFlags(fs *pflag.FlagSet, options []ConfigOption) error {
	for _, o := range options {
		switch v := o.Default.(type) {
		case string:
			fs.StringP(o.Flag, o.Shorthand, v, o.Description)
		case bool:
			fs.BoolP(o.Flag, o.Shorthand, v, o.Description)
		default:
			return fmt.Errorf("unsupported flag type for key: %s", o.Key)
		}
	}
	return nil
}

// BindFlags makes the flags registered by RegisterFlags take precedence
// over the environment and the config file once they are set.
func (c *Config) BindFlags(fs *pflag.FlagSet, options []ConfigOption) error {
	for _, o := range options {
		f := fs.Lookup(o.Flag)
		if f == nil {
			return fmt.Errorf("flag %s is not registered", o.Flag)
		}
		if err := c.v.BindPFlag(o.Key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", o.Flag, err)
		}
	}
	return nil
}

// Options resolves the configuration of a create run. The namespace falls
// back to the CI head ref turned into a DNS label, the tag to the first seven
// characters of the CI commit SHA.
func (c *Config) Options() domain.Options {
	namespace := c.v.GetString(KeyNamespace)
	if namespace == "" {
		namespace = NamespaceFromRef(c.v.GetString(KeyHeadRef))
	}

	tag := c.v.GetString(KeyTag)
	if tag == "" {
		tag = c.v.GetString(KeyCommitSHA)
		if len(tag) > shortSHALength {
			tag = tag[:shortSHALength]
		}
	}

	return domain.Options{
		Service:     c.v.GetString(KeyService),
		ClusterRepo: c.v.GetString(KeyClusterRepo),
		TargetImage: c.v.GetString(KeyTargetImage),
		Namespace:   namespace,
		Tag:         tag,
		Token:       c.v.GetString(KeyToken),
		Branch:      c.v.GetString(KeyBranch),
		WorkDir:     c.v.GetString(KeyWorkDir),
		Flux:        c.v.GetBool(KeyFlux),
		DryRun:      c.v.GetBool(KeyDryRun),
		Built:       c.v.GetBool(KeyBuilt),
	}
}

// NamespaceFromRef turns a branch name into a DNS-1123 label: lowercased,
// every character outside [a-z0-9-] replaced by '-', cut to 63 characters and
// without leading or trailing '-'.
func NamespaceFromRef(ref string) string {
	namespace := nonLabel.ReplaceAllString(strings.ToLower(ref), "-")
	if len(namespace) > validation.DNS1123LabelMaxLength {
		namespace = namespace[:validation.DNS1123LabelMaxLength]
	}
	return strings.Trim(namespace, "-")
}
