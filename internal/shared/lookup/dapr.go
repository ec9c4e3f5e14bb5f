package lookup

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultCreationAppID is the Dapr app id of the Creation Service.
const DefaultCreationAppID = "creation-service"

// Invoker is the subset of the Dapr client used for service invocation.
type Invoker interface {
	InvokeMethod(ctx context.Context, appID, methodName, verb string) ([]byte, error)
}

// DaprOracle resolves codes through Dapr service invocation.
type DaprOracle struct {
	client Invoker
	appID  string
}

func NewDaprOracle(client Invoker, appID string) *DaprOracle {
	if appID == "" {
		appID = DefaultCreationAppID
	}
	return &DaprOracle{client: client, appID: appID}
}

func (o *DaprOracle) Lookup(ctx context.Context, code string) (*Link, error) {
	resp, err := o.client.InvokeMethod(ctx, o.appID, "api/url/"+code, "get")
	if err != nil {
		// The sidecar maps the callee's HTTP 404 to codes.NotFound.
		if s, ok := status.FromError(err); ok && s.Code() == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var link Link
	if err := json.Unmarshal(resp, &link); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}
	if link.OriginalURL == "" {
		return nil, ErrNotFound
	}
	return &link, nil
}
