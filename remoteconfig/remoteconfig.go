// Package remoteconfig reads parameter values from a Firebase Remote Config
// template over the REST API.
//
// It deliberately reads only the template's default value (or, failing that,
// the first conditional value); targeting conditions are never evaluated. The
// credentialed client is expensive to construct, so the process shares a
// single lazily-built instance via Shared.
package remoteconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"ytcatalog/internal/retry"
	"ytcatalog/internal/transport"
)

const (
	defaultEndpoint  = "https://firebaseremoteconfig.googleapis.com"
	defaultProjectID = "devlokos"
	scope            = "https://www.googleapis.com/auth/firebase.remoteconfig"

	// Environment variables honored during construction.
	envCredentials = "FIREBASE_ADMIN_SDK_KEY"
	envProjectID   = "FIREBASE_PROJECT_ID"
)

// Sentinel errors for template lookups.
var (
	// ErrParamNotFound indicates the template has no parameter by that name.
	ErrParamNotFound = errors.New("remoteconfig: parameter not found")
	// ErrParamEmpty indicates the parameter exists but carries no usable value.
	ErrParamEmpty = errors.New("remoteconfig: parameter has no value")
	// ErrMalformedTemplate indicates a 2xx response whose body was not a template.
	ErrMalformedTemplate = errors.New("remoteconfig: malformed template response")
)

// StatusError indicates a non-2xx response from the Remote Config endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remoteconfig: http status %d", e.StatusCode)
}

// Template is the Remote Config template document, reduced to the parts this
// package reads.
type Template struct {
	Parameters map[string]Parameter `json:"parameters"`
}

// Parameter is a single named template parameter.
type Parameter struct {
	DefaultValue      *ParameterValue           `json:"defaultValue,omitempty"`
	ConditionalValues map[string]ParameterValue `json:"conditionalValues,omitempty"`
	ValueType         string                    `json:"valueType,omitempty"`
}

// ParameterValue is either an explicit string or a marker to use the in-app
// default (which, for this package, counts as no value).
type ParameterValue struct {
	Value           string `json:"value,omitempty"`
	UseInAppDefault bool   `json:"useInAppDefault,omitempty"`
}

// Options configures Client construction. The zero value is usable.
type Options struct {
	// ProjectID overrides the Firebase project. Empty falls back to the
	// FIREBASE_PROJECT_ID environment variable, the credentials' project,
	// then the compiled-in default.
	ProjectID string

	// CredentialsJSON overrides the service account key. Empty falls back to
	// the FIREBASE_ADMIN_SDK_KEY environment variable, then Application
	// Default Credentials.
	CredentialsJSON []byte

	// Endpoint overrides the API base URL. Tests point this at a stub.
	Endpoint string

	// HTTPClient overrides the authorized client entirely. When set, no
	// credentials are resolved. Tests use this.
	HTTPClient *http.Client

	// Transport configures the underlying connection pool for the authorized
	// client. Nil uses transport defaults.
	Transport *transport.Config

	// Retry tunes the template fetch retry budget. Zero value uses defaults.
	Retry retry.Config
}

// Client fetches Remote Config templates for one project.
type Client struct {
	projectID  string
	endpoint   string
	httpClient *http.Client
	retryCfg   retry.Config
}

// New constructs a credentialed Remote Config client. Construction fails when
// no usable credentials can be resolved; callers are expected to degrade to
// other configuration sources rather than fail their request.
func New(ctx context.Context, opts *Options) (*Client, error) {
	if opts == nil {
		opts = &Options{}
	}

	retryCfg := opts.Retry
	if retryCfg.MaxRetries == 0 && retryCfg.InitialBackoff == 0 {
		retryCfg = retry.DefaultConfig()
	}

	c := &Client{
		endpoint: opts.Endpoint,
		retryCfg: retryCfg,
	}
	if c.endpoint == "" {
		c.endpoint = defaultEndpoint
	}

	var credProject string
	if opts.HTTPClient != nil {
		c.httpClient = opts.HTTPClient
	} else {
		// Route token refresh and API calls through the pooled transport.
		base := transport.NewClient(opts.Transport)
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

		creds, err := resolveCredentials(ctx, opts.CredentialsJSON)
		if err != nil {
			return nil, fmt.Errorf("remoteconfig: resolve credentials: %w", err)
		}
		credProject = creds.ProjectID
		c.httpClient = oauth2.NewClient(ctx, creds.TokenSource)
		c.httpClient.Timeout = base.Timeout
	}

	c.projectID = firstNonEmpty(opts.ProjectID, os.Getenv(envProjectID), credProject, defaultProjectID)
	return c, nil
}

func resolveCredentials(ctx context.Context, credJSON []byte) (*google.Credentials, error) {
	if len(credJSON) == 0 {
		if raw := os.Getenv(envCredentials); raw != "" {
			credJSON = []byte(raw)
		}
	}
	if len(credJSON) > 0 {
		return google.CredentialsFromJSON(ctx, credJSON, scope)
	}
	return google.FindDefaultCredentials(ctx, scope)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ProjectID reports the Firebase project this client reads from.
func (c *Client) ProjectID() string { return c.projectID }

// Template fetches the current Remote Config template.
func (c *Client) Template(ctx context.Context) (*Template, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/remoteConfig", c.endpoint, c.projectID)

	var tmpl *Template
	err := retry.Do(ctx, c.retryCfg, fetchErrorClassifier, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
		if err != nil {
			return err
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		var t Template
		if err := json.Unmarshal(body, &t); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedTemplate, err)
		}
		tmpl = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// fetchErrorClassifier retries server-side failures but treats client errors
// (bad credentials, missing project) as permanent.
func fetchErrorClassifier(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500 || statusErr.StatusCode == http.StatusTooManyRequests
	}
	if errors.Is(err, ErrMalformedTemplate) {
		return false
	}
	return retry.IsRetryable(err)
}

// Value fetches the template and returns the value of the named parameter:
// the default value when present, otherwise the first conditional value in
// deterministic (sorted condition name) order.
func (c *Client) Value(ctx context.Context, name string) (string, error) {
	tmpl, err := c.Template(ctx)
	if err != nil {
		return "", err
	}
	return tmpl.Value(name)
}

// Value looks up a parameter value inside an already-fetched template.
func (t *Template) Value(name string) (string, error) {
	param, ok := t.Parameters[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrParamNotFound, name)
	}

	if param.DefaultValue != nil && param.DefaultValue.Value != "" {
		return param.DefaultValue.Value, nil
	}

	// Conditional values live in a map; pick by sorted condition name so
	// repeated reads agree with each other.
	names := make([]string, 0, len(param.ConditionalValues))
	for cond := range param.ConditionalValues {
		names = append(names, cond)
	}
	sort.Strings(names)
	for _, cond := range names {
		if v := param.ConditionalValues[cond].Value; v != "" {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrParamEmpty, name)
}

// sharedState memoizes one client construction for the process lifetime.
// Construction runs at most once even under concurrent first use; a failed
// construction stays failed until process restart.
type sharedState struct {
	once   sync.Once
	client *Client
	err    error
}

func (s *sharedState) get(build func() (*Client, error)) (*Client, error) {
	s.once.Do(func() {
		s.client, s.err = build()
	})
	return s.client, s.err
}

var shared sharedState

// Shared returns the process-wide Remote Config client, constructing it on
// first use. Construction uses a background context so the shared client does
// not inherit the first caller's request deadline.
func Shared() (*Client, error) {
	return shared.get(func() (*Client, error) {
		return New(context.Background(), nil)
	})
}
