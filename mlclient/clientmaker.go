package mlclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/ml/v1"
)

// GoogleClientMaker makes clients authenticated with application default
// credentials.
type GoogleClientMaker struct{}

func (_ *GoogleClientMaker) MakeClient(ctx context.Context) (*http.Client, error) {
	client, err := google.DefaultClient(ctx, ml.CloudPlatformScope)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't create google client")
	}
	return client, nil
}
