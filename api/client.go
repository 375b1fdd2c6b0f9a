package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"cropconnect-client/config"
	"cropconnect-client/models"
	"cropconnect-client/utils"
)

// Client talks to the CropConnect marketplace API. It is a thin
// request/response wrapper: no retries, no timeouts, no cancellation.
// A failed call is terminal for that one operation and the user
// re-triggers it.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *utils.Logger
}

// Attachment is one image file going into a crop submission.
type Attachment struct {
	Name string
	Data []byte
}

// New creates a ready-to-use API client.
func New(cfg *config.Config, logger *utils.Logger) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		http:    &http.Client{},
		logger:  logger,
	}
}

// ListCrops fetches every crop record the server knows about. Records
// come back in the server's raw shape; callers normalise them once at
// the ingestion boundary.
func (c *Client) ListCrops() ([]models.RawCrop, error) {
	resp, err := c.http.Get(c.baseURL + "/api/crops")
	if err != nil {
		c.logger.Error("[api] GET /api/crops: %v", err)
		return nil, fmt.Errorf("api: list crops: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("[api] GET /api/crops: status %d", resp.StatusCode)
		return nil, fmt.Errorf("api: list crops: server returned %d", resp.StatusCode)
	}

	var crops []models.RawCrop
	if err := json.NewDecoder(resp.Body).Decode(&crops); err != nil {
		return nil, fmt.Errorf("api: decode crops: %w", err)
	}
	return crops, nil
}

// CreateCrop submits a new crop as one multipart form, image
// attachments included. No per-image size or type validation happens
// here; the server owns that.
func (c *Client) CreateCrop(form models.CropForm, images []Attachment) error {
	return c.submitCrop(http.MethodPost, c.baseURL+"/api/crops", form, images)
}

// UpdateCrop replaces the crop identified by id with the submitted
// fields, attaching any new images.
func (c *Client) UpdateCrop(id string, form models.CropForm, images []Attachment) error {
	return c.submitCrop(http.MethodPut, c.baseURL+"/api/crops/"+id, form, images)
}

// DeleteCrop removes the crop identified by id.
func (c *Client) DeleteCrop(id string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/api/crops/"+id, nil)
	if err != nil {
		return fmt.Errorf("api: delete crop: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("[api] DELETE /api/crops/%s: %v", id, err)
		return fmt.Errorf("api: delete crop: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.logger.Error("[api] DELETE /api/crops/%s: status %d", id, resp.StatusCode)
		return fmt.Errorf("api: delete crop: server returned %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) submitCrop(method, url string, form models.CropForm, images []Attachment) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":     form.Name,
		"type":     form.Type,
		"quality":  form.Quality,
		"price":    strconv.FormatFloat(form.Price, 'f', -1, 64),
		"quantity": strconv.FormatFloat(form.Quantity, 'f', -1, 64),
		"datetime": form.Datetime,
		"location": form.Location,
		"status":   "Available",
		"sold":     "false",
		"notes":    form.Notes,
	}
	for key, val := range fields {
		if err := mw.WriteField(key, val); err != nil {
			return fmt.Errorf("api: build crop form: %w", err)
		}
	}

	for _, img := range images {
		name := img.Name
		if name == "" {
			name = uuid.NewString() + ".jpg"
		}
		part, err := mw.CreateFormFile("cropImages", name)
		if err != nil {
			return fmt.Errorf("api: attach image: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return fmt.Errorf("api: attach image: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("api: build crop form: %w", err)
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		return fmt.Errorf("api: save crop: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("[api] %s %s: %v", method, url, err)
		return fmt.Errorf("api: save crop: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.logger.Error("[api] %s %s: status %d", method, url, resp.StatusCode)
		return fmt.Errorf("api: save crop: server returned %d", resp.StatusCode)
	}
	return nil
}

// Messages fetches the ordered message thread for a crop. Order is
// whatever the server returned; the client never reorders.
func (c *Client) Messages(cropID string) ([]models.Message, error) {
	resp, err := c.http.Get(c.baseURL + "/api/messages/" + cropID)
	if err != nil {
		c.logger.Error("[api] GET /api/messages/%s: %v", cropID, err)
		return nil, fmt.Errorf("api: fetch messages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("[api] GET /api/messages/%s: status %d", cropID, resp.StatusCode)
		return nil, fmt.Errorf("api: fetch messages: server returned %d", resp.StatusCode)
	}

	var msgs []models.Message
	if err := json.NewDecoder(resp.Body).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("api: decode messages: %w", err)
	}
	return msgs, nil
}

// SendMessage posts one chat message to a crop's thread.
func (c *Client) SendMessage(cropID, senderID, text string) error {
	payload := map[string]string{
		"crop_id":   cropID,
		"sender_id": senderID,
		"message":   text,
	}
	return c.postJSON(c.baseURL+"/api/send_message", payload, nil)
}

// Login authenticates against the marketplace and returns the session
// user the server hands back.
func (c *Client) Login(email, password string) (models.User, error) {
	payload := map[string]string{"email": email, "password": password}
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.postJSON(c.baseURL+"/api/auth/login", payload, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// Register creates a new marketplace account.
func (c *Client) Register(username, email, password, role string) error {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"role":     role,
	}
	return c.postJSON(c.baseURL+"/api/auth/register", payload, nil)
}

// PlaceBid submits a bid on a crop.
func (c *Client) PlaceBid(cropID, bidderID string, price float64) error {
	payload := map[string]any{
		"bidder_id": bidderID,
		"bid_price": price,
	}
	return c.postJSON(c.baseURL+"/api/bids/"+cropID, payload, nil)
}

func (c *Client) postJSON(url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: marshal request: %w", err)
	}

	resp, err := c.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("[api] POST %s: %v", url, err)
		return fmt.Errorf("api: post %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("[api] POST %s: status %d", url, resp.StatusCode)
		return fmt.Errorf("api: post %s: server returned %d: %s", url, resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	return nil
}
