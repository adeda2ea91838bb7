package model

import (
	"slices"

	"github.com/secmon-lab/mailnode/pkg/domain/types"
)

const (
	// NodeName is the node type identifier registered with the host
	NodeName = "mailerLiteCustom"

	// CredentialName is the credential type identifier registered with the host
	CredentialName = "mailerLiteCustomApi"

	// DefaultBaseURL is the MailerLite API root
	DefaultBaseURL = "https://connect.mailerlite.com/api"

	// LoadOptionsGetGroups is the dynamic option method that populates the group selector
	LoadOptionsGetGroups = "getGroups"
)

// PropertyType is the host input widget type of a node property
type PropertyType string

const (
	PropertyTypeString  PropertyType = "string"
	PropertyTypeOptions PropertyType = "options"
)

// PropertyOption is a static choice of an options property
type PropertyOption struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Action      string `json:"action,omitempty"`
}

// TypeOptions holds widget-specific settings
type TypeOptions struct {
	LoadOptionsMethod string `json:"loadOptionsMethod,omitempty"`
	Password          bool   `json:"password,omitempty"`
}

// DisplayOptions restricts a property to some operations
type DisplayOptions struct {
	Show map[string][]string `json:"show,omitempty"`
}

// Property describes one node or credential parameter. Visibility is
// interpreted by the host.
type Property struct {
	DisplayName      string           `json:"displayName"`
	Name             string           `json:"name"`
	Type             PropertyType     `json:"type"`
	Default          string           `json:"default"`
	Required         bool             `json:"required,omitempty"`
	NoDataExpression bool             `json:"noDataExpression,omitempty"`
	Placeholder      string           `json:"placeholder,omitempty"`
	Description      string           `json:"description,omitempty"`
	Options          []PropertyOption `json:"options,omitempty"`
	TypeOptions      *TypeOptions     `json:"typeOptions,omitempty"`
	DisplayOptions   *DisplayOptions  `json:"displayOptions,omitempty"`
}

// VisibleFor reports whether the host shows this property for the operation
func (p Property) VisibleFor(op types.Operation) bool {
	if p.DisplayOptions == nil {
		return true
	}
	allowed, ok := p.DisplayOptions.Show["operation"]
	if !ok {
		return true
	}
	return slices.Contains(allowed, op.String())
}

// CredentialRef links a node to a credential type
type CredentialRef struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// NodeDescription is the declarative metadata the host renders
type NodeDescription struct {
	DisplayName  string          `json:"displayName"`
	Name         string          `json:"name"`
	Icon         string          `json:"icon"`
	Group        []string        `json:"group"`
	Version      int             `json:"version"`
	Description  string          `json:"description"`
	Defaults     map[string]any  `json:"defaults"`
	Inputs       []string        `json:"inputs"`
	Outputs      []string        `json:"outputs"`
	UsableAsTool bool            `json:"usableAsTool"`
	Credentials  []CredentialRef `json:"credentials"`
	Properties   []Property      `json:"properties"`
}

// Property finds a property by name
func (d *NodeDescription) Property(name string) *Property {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			return &d.Properties[i]
		}
	}
	return nil
}

// CredentialTestRequest is the probe the host sends to validate a credential
type CredentialTestRequest struct {
	BaseURL string `json:"baseURL"`
	URL     string `json:"url"`
	Method  string `json:"method"`
}

// CredentialDescription is the declarative metadata of the credential type
type CredentialDescription struct {
	Name             string                `json:"name"`
	DisplayName      string                `json:"displayName"`
	DocumentationURL string                `json:"documentationUrl"`
	Icon             string                `json:"icon"`
	Properties       []Property            `json:"properties"`
	Test             CredentialTestRequest `json:"test"`
}

// CredentialTestStatus is the outcome of a credential probe
type CredentialTestStatus string

const (
	CredentialTestOK    CredentialTestStatus = "OK"
	CredentialTestError CredentialTestStatus = "Error"
)

// CredentialTestResult is reported back to the host after a credential probe
type CredentialTestResult struct {
	Status  CredentialTestStatus `json:"status"`
	Message string               `json:"message"`
}

func showForAddSubscriber() *DisplayOptions {
	return &DisplayOptions{
		Show: map[string][]string{
			"operation": {types.OperationAddSubscriber.String()},
		},
	}
}

// NewNodeDescription returns the node metadata
func NewNodeDescription() *NodeDescription {
	return &NodeDescription{
		DisplayName: "MailerLite Custom",
		Name:        NodeName,
		Icon:        "file:mailerlite.svg",
		Group:       []string{"transform"},
		Version:     1,
		Description: "Fetch groups and add subscribers to MailerLite",
		Defaults: map[string]any{
			"name": "MailerLite Custom",
		},
		Inputs:       []string{"main"},
		Outputs:      []string{"main"},
		UsableAsTool: true,
		Credentials: []CredentialRef{
			{Name: CredentialName, Required: true},
		},
		Properties: []Property{
			{
				DisplayName:      "Operation",
				Name:             "operation",
				Type:             PropertyTypeOptions,
				NoDataExpression: true,
				Default:          types.DefaultOperation.String(),
				Options: []PropertyOption{
					{
						Name:        "Get Groups",
						Value:       types.OperationGetGroups.String(),
						Description: "Fetch list of groups",
						Action:      "Fetch list of groups",
					},
					{
						Name:        "Add Subscriber to Group",
						Value:       types.OperationAddSubscriber.String(),
						Description: "Add a user to a group",
						Action:      "Add a user to a group",
					},
				},
			},
			{
				DisplayName:    "Group Name or ID",
				Name:           "groupId",
				Type:           PropertyTypeOptions,
				Default:        "",
				Description:    "Choose from the list, or specify an ID using an expression",
				TypeOptions:    &TypeOptions{LoadOptionsMethod: LoadOptionsGetGroups},
				DisplayOptions: showForAddSubscriber(),
			},
			{
				DisplayName:    "Email",
				Name:           "email",
				Type:           PropertyTypeString,
				Default:        "",
				Required:       true,
				Placeholder:    "name@email.com",
				DisplayOptions: showForAddSubscriber(),
			},
		},
	}
}

// NewCredentialDescription returns the credential type metadata
func NewCredentialDescription() *CredentialDescription {
	return &CredentialDescription{
		Name:             CredentialName,
		DisplayName:      "MailerLite API",
		DocumentationURL: "https://developers.mailerlite.com/docs/",
		Icon:             "file:mailerlite.svg",
		Properties: []Property{
			{
				DisplayName: "API Key",
				Name:        "apiKey",
				Type:        PropertyTypeString,
				Default:     "",
				Required:    true,
				TypeOptions: &TypeOptions{Password: true},
			},
		},
		Test: CredentialTestRequest{
			BaseURL: DefaultBaseURL,
			URL:     "/subscribers",
			Method:  "GET",
		},
	}
}
