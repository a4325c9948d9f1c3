package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
)

// MicrosoftService drives the Azure AD federated login exchange: redirect
// out with a state, exchange the returned code for a token, then fetch the
// signed-in account's profile from Microsoft Graph.
type MicrosoftService interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState(userAgent string) string
	// RedirectURL generates the OAuth2 redirect URL with a state.
	RedirectURL(state string) string
	// VerifyToken exchanges the code for an OAuth2 token.
	VerifyToken(ctx context.Context, code string) (*oauth2.Token, error)
	// VerifyUser fetches the Microsoft Graph profile for the token.
	VerifyUser(ctx context.Context, token *oauth2.Token) (MicrosoftInformation, error)
}

type MicrosoftServiceImpl struct {
	config *oauth2.Config
}

func NewMicrosoftService(clientID string, clientSecret string, tenantID string, redirectURL string, scopes []string) MicrosoftService {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint:     microsoft.AzureADEndpoint(tenantID),
	}
	return &MicrosoftServiceImpl{config: config}
}

// MicrosoftInformation is the subset of the Graph /me profile the login
// flow needs. Mail is empty for some tenants; UserPrincipalName is the
// fallback address.
type MicrosoftInformation struct {
	ID                string `json:"id"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	GivenName         string `json:"givenName"`
	Surname           string `json:"surname"`
}

// Email returns the usable address for identity-store lookup.
func (m MicrosoftInformation) Email() string {
	if m.Mail != "" {
		return m.Mail
	}
	return m.UserPrincipalName
}

// GenerateState generates a random state string for OAuth2 flows.
func (g *MicrosoftServiceImpl) GenerateState(userAgent string) string {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	state := fmt.Sprintf("%s.%s", base64.URLEncoding.EncodeToString(b), userAgent)
	return base64.URLEncoding.EncodeToString([]byte(state))
}

func (g *MicrosoftServiceImpl) RedirectURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *MicrosoftServiceImpl) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return &oauth2.Token{}, err
	}
	return token, nil
}

func (g *MicrosoftServiceImpl) VerifyUser(ctx context.Context, token *oauth2.Token) (MicrosoftInformation, error) {
	var req MicrosoftInformation

	client := g.config.Client(ctx, token)

	resp, err := client.Get("https://graph.microsoft.com/v1.0/me")
	if err != nil {
		return MicrosoftInformation{}, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(&req); err != nil {
		return MicrosoftInformation{}, err
	}

	return req, nil
}
