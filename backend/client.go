package backend

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"slither/model"
)

// APIError carries the collaborator's error detail so views can show
// it verbatim ("Not enough coins", "Skin already owned", ...).
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Client talks to the account service: auth, profile, shop and the
// global leaderboard. Plain request/response, no protocol state.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type loginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        model.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the user profile.
// The token is kept on the client for subsequent authenticated calls.
func (c *Client) Login(username, password string) (model.User, error) {
	form := url.Values{"username": {username}, "password": {password}}
	var resp loginResponse
	if err := c.postForm("/login", form, false, &resp); err != nil {
		return model.User{}, err
	}
	c.SetToken(resp.AccessToken)
	return resp.User, nil
}

func (c *Client) Register(username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	return c.postForm("/register", form, false, nil)
}

// Me fetches the profile for the stored token. A rejection means the
// token is no longer good and the caller should fall back to login.
func (c *Client) Me() (model.User, error) {
	var u model.User
	err := c.get("/users/me", true, &u)
	return u, err
}

func (c *Client) BuySkin(skinId string, price int) error {
	form := url.Values{"skin_id": {skinId}, "price": {strconv.Itoa(price)}}
	return c.postForm("/buy_skin", form, true, nil)
}

func (c *Client) SelectSkin(skinId string) error {
	form := url.Values{"skin_id": {skinId}}
	return c.postForm("/select_skin", form, true, nil)
}

func (c *Client) Leaderboard(limit int) ([]model.GlobalRow, error) {
	var rows []model.GlobalRow
	err := c.get("/leaderboard?limit="+strconv.Itoa(limit), false, &rows)
	return rows, err
}

func (c *Client) get(path string, authed bool, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, authed, out)
}

func (c *Client) postForm(path string, form url.Values, authed bool, out interface{}) error {
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, authed, out)
}

func (c *Client) do(req *http.Request, authed bool, out interface{}) error {
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.Token())
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Warnf("backend: %s %s: %v", req.Method, req.URL.Path, err)
		return err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &detail) == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
