package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const userAgent = "CantonBot/1.0"

// Client is an HTTP client for the Canton Network explorer REST API.
//
// Every call returns a *Result instead of a Go error: transport failures,
// bad status codes and decode failures are all captured as failed results,
// so callers never need to branch on an error value
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a new explorer API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// Stats fetches the network statistics
func (c *Client) Stats(ctx context.Context) *Result {
	return c.get(ctx, "/stats", nil)
}

// Validators fetches the validator roster
func (c *Client) Validators(ctx context.Context) *Result {
	return c.get(ctx, "/validators", nil)
}

// Rounds fetches a page of rounds
func (c *Client) Rounds(ctx context.Context, page, limit int) *Result {
	query := url.Values{
		"page":  []string{strconv.Itoa(page)},
		"limit": []string{strconv.Itoa(limit)},
	}

	return c.get(ctx, "/rounds", query)
}

// Governance fetches a page of governance proposals
func (c *Client) Governance(ctx context.Context, page, limit int) *Result {
	query := url.Values{
		"page":  []string{strconv.Itoa(page)},
		"limit": []string{strconv.Itoa(limit)},
	}

	return c.get(ctx, "/governance", query)
}

// GovernanceDetails fetches a single governance proposal
func (c *Client) GovernanceDetails(ctx context.Context, governanceID string) *Result {
	return c.get(ctx, "/governance/"+url.PathEscape(governanceID), nil)
}

// TransactionDetails fetches a single transaction
func (c *Client) TransactionDetails(ctx context.Context, txID string) *Result {
	return c.get(ctx, "/transactions/"+url.PathEscape(txID), nil)
}

// PartyInfo fetches a party by its party ID.
// Party IDs carry reserved characters ("::" separators), so the ID is
// percent-encoded before being placed in the path
func (c *Client) PartyInfo(ctx context.Context, partyID string) *Result {
	return c.get(ctx, "/parties/"+url.PathEscape(partyID), nil)
}

// PartyTransactions fetches the transactions of a party.
//
// The list endpoint is keyed by the party's internal numeric ID, so the
// party is resolved first; a failed lookup is propagated verbatim and the
// list call is never attempted
func (c *Client) PartyTransactions(ctx context.Context, partyID string, limit int) *Result {
	numericID, errRes := c.resolvePartyID(ctx, partyID)
	if errRes != nil {
		return errRes
	}

	query := url.Values{
		"limit": []string{strconv.Itoa(limit)},
	}

	return c.get(ctx, fmt.Sprintf("/parties/%s/tx", numericID), query)
}

// PartyTransfers fetches the transfers of a party, resolving the party's
// internal numeric ID first
func (c *Client) PartyTransfers(ctx context.Context, partyID string, limit int) *Result {
	numericID, errRes := c.resolvePartyID(ctx, partyID)
	if errRes != nil {
		return errRes
	}

	query := url.Values{
		"limit": []string{strconv.Itoa(limit)},
	}

	return c.get(ctx, fmt.Sprintf("/parties/%s/transfers", numericID), query)
}

// resolvePartyID resolves a party ID into the internal numeric ID
// through the party info endpoint
func (c *Client) resolvePartyID(ctx context.Context, partyID string) (string, *Result) {
	info := c.PartyInfo(ctx, partyID)
	if info.Failed() {
		return "", info
	}

	obj, ok := info.Object()
	if !ok {
		return "", &Result{Err: "numeric ID not found in party info"}
	}

	switch id := obj["id"].(type) {
	case float64:
		if id != 0 {
			return strconv.FormatInt(int64(id), 10), nil
		}
	case string:
		if id != "" {
			return id, nil
		}
	}

	return "", &Result{Err: "numeric ID not found in party info"}
}

// get executes a GET request against the given API endpoint
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) *Result {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+endpoint,
		http.NoBody,
	)
	if err != nil {
		return failedResult(fmt.Errorf("unable to create GET request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return failedResult(fmt.Errorf("unable to execute GET request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Result{
			Err: fmt.Sprintf("invalid status code received: %d", resp.StatusCode),
		}
	}

	var value any

	if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
		return failedResult(fmt.Errorf("unable to decode response: %w", err))
	}

	return &Result{Value: value}
}
