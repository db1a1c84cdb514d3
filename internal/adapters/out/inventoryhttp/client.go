// Package inventoryhttp implements the inventory gateway against the blood
// establishment's inventory REST service. Units are validated one at a time
// during packing and in bulk during the close-time batch revalidation.
package inventoryhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/pkg/errs"
)

const defaultTimeout = 30 * time.Second

// Client implements ports.InventoryService over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an inventory gateway client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// NewClientWithHTTPClient allows injecting a custom HTTP client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	c, err := NewClient(baseURL)
	if err != nil {
		return nil, err
	}
	c.httpClient = httpClient
	return c, nil
}

type requestBody struct {
	UnitNumber   string `json:"unitNumber"`
	ProductCode  string `json:"productCode"`
	LocationCode string `json:"locationCode"`
	EmployeeID   string `json:"employeeId"`
}

type volumeBody struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

type inventoryBody struct {
	UnitNumber         string       `json:"unitNumber"`
	ProductCode        string       `json:"productCode"`
	ProductDescription string       `json:"productDescription"`
	AboRh              string       `json:"aboRh"`
	Weight             int          `json:"weight"`
	Volumes            []volumeBody `json:"volumes"`
	ExpirationDate     time.Time    `json:"expirationDate"`
	CollectionDate     time.Time    `json:"collectionDate"`
}

type notificationBody struct {
	ErrorName    string   `json:"errorName"`
	ErrorType    string   `json:"errorType"`
	Action       string   `json:"action"`
	Reason       string   `json:"reason"`
	ErrorMessage string   `json:"errorMessage"`
	Details      []string `json:"details"`
}

type validationBody struct {
	Inventory     *inventoryBody     `json:"inventory"`
	Notifications []notificationBody `json:"notifications"`
}

// ValidateInventory checks a single unit against the inventory service.
func (c *Client) ValidateInventory(ctx context.Context, request inventory.ValidationRequest) (*inventory.Validation, error) {
	var body validationBody
	if err := c.post(ctx, "/api/v1/inventory/validations", toRequestBody(request), &body); err != nil {
		return nil, err
	}

	return toValidation(body)
}

// ValidateInventoryBatch checks every unit of a shipment in one call. The
// response order matches the request order.
func (c *Client) ValidateInventoryBatch(ctx context.Context, requests []inventory.ValidationRequest) ([]*inventory.Validation, error) {
	bodies := make([]requestBody, 0, len(requests))
	for _, request := range requests {
		bodies = append(bodies, toRequestBody(request))
	}

	var response []validationBody
	if err := c.post(ctx, "/api/v1/inventory/validations/batch", bodies, &response); err != nil {
		return nil, err
	}
	if len(response) != len(requests) {
		return nil, fmt.Errorf("inventory service returned %d validations for %d requests",
			len(response), len(requests))
	}

	validations := make([]*inventory.Validation, 0, len(response))
	for _, body := range response {
		validation, err := toValidation(body)
		if err != nil {
			return nil, err
		}
		validations = append(validations, validation)
	}

	return validations, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inventory service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func toRequestBody(request inventory.ValidationRequest) requestBody {
	return requestBody{
		UnitNumber:   request.UnitNumber,
		ProductCode:  request.ProductCode,
		LocationCode: request.LocationCode,
		EmployeeID:   request.EmployeeID,
	}
}

func toValidation(body validationBody) (*inventory.Validation, error) {
	var inv *inventory.Inventory
	if body.Inventory != nil {
		volumes := make([]inventory.Volume, 0, len(body.Inventory.Volumes))
		for _, volume := range body.Inventory.Volumes {
			volumes = append(volumes, inventory.NewVolume(volume.Type, volume.Value))
		}

		built, err := inventory.NewInventory(
			body.Inventory.UnitNumber,
			body.Inventory.ProductCode,
			body.Inventory.ProductDescription,
			body.Inventory.AboRh,
			body.Inventory.Weight,
			volumes,
			body.Inventory.ExpirationDate,
			body.Inventory.CollectionDate,
		)
		if err != nil {
			return nil, err
		}
		inv = built
	}

	notifications := make([]inventory.Notification, 0, len(body.Notifications))
	for _, notification := range body.Notifications {
		notifications = append(notifications, inventory.Notification{
			ErrorName:    notification.ErrorName,
			ErrorType:    notification.ErrorType,
			Action:       notification.Action,
			Reason:       notification.Reason,
			ErrorMessage: notification.ErrorMessage,
			Details:      notification.Details,
		})
	}

	return &inventory.Validation{
		Inventory:     inv,
		Notifications: notifications,
	}, nil
}
