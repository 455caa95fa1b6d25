package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"chiclon/internal/domains/booking/model"
	"chiclon/internal/domains/booking/model/dto"
	catalogDto "chiclon/internal/domains/catalog/model/dto"
	scheduleModel "chiclon/internal/domains/schedule/model"
	scheduleDto "chiclon/internal/domains/schedule/model/dto"
	"chiclon/internal/submission"
	"chiclon/shared/constant"
)

const (
	PathBook         = "/api/book-appointment"
	PathSlots        = "/api/slots"
	PathHaircutTypes = "/api/haircut-types"

	defaultTimeout = 15 * time.Second
)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client talks to the booking API. It implements submission.RemoteBooker.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ submission.RemoteBooker = (*Client)(nil)

func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Book submits req. Refusals come back as *submission.RejectedError, anything that prevents
// reading a verdict as *submission.TransportError.
func (c *Client) Book(ctx context.Context, req model.Request) (model.Request, error) {
	var body dto.BookRequest
	body.FromModel(req)

	payload, err := json.Marshal(body)
	if err != nil {
		return model.Request{}, &submission.TransportError{Err: err}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathBook, bytes.NewReader(payload))
	if err != nil {
		return model.Request{}, &submission.TransportError{Err: err}
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return model.Request{}, &submission.TransportError{Err: err}
	}
	defer response.Body.Close()

	var res dto.BookResponse
	if err = json.NewDecoder(response.Body).Decode(&res); err != nil {
		if response.StatusCode >= http.StatusBadRequest {
			return model.Request{}, &submission.RejectedError{StatusCode: response.StatusCode}
		}

		return model.Request{}, &submission.TransportError{Err: fmt.Errorf("failed to decode booking response: %w", err)}
	}

	if !res.Success || response.StatusCode >= http.StatusBadRequest {
		return model.Request{}, &submission.RejectedError{StatusCode: response.StatusCode, Message: res.Message}
	}

	if res.Appointment == nil {
		return req, nil
	}

	return res.Appointment.ToModel(req), nil
}

func (c *Client) Slots(ctx context.Context, date string) ([]scheduleModel.Slot, error) {
	var res scheduleDto.SlotsResponse

	if err := c.get(ctx, PathSlots+"?"+url.Values{constant.RequestParamDate: {date}}.Encode(), &res); err != nil {
		return nil, err
	}

	slots := make([]scheduleModel.Slot, len(res.Slots))
	for i, slot := range res.Slots {
		slots[i] = scheduleModel.Slot{Value: slot.Value, Label: slot.Label}
	}

	return slots, nil
}

func (c *Client) HaircutTypes(ctx context.Context) ([]catalogDto.HaircutTypeResponse, error) {
	var res catalogDto.HaircutTypesResponse

	if err := c.get(ctx, PathHaircutTypes, &res); err != nil {
		return nil, err
	}

	return res.HaircutTypes, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &submission.TransportError{Err: err}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return &submission.TransportError{Err: err}
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return &submission.TransportError{Err: err}
	}

	if response.StatusCode >= http.StatusBadRequest {
		var body errorBody
		_ = json.Unmarshal(raw, &body)

		return &submission.RejectedError{StatusCode: response.StatusCode, Message: body.Error}
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return &submission.TransportError{Err: fmt.Errorf("failed to decode %s response: %w", path, err)}
	}

	return nil
}
