package adapter

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-autofill-vault/models"
)

// accountIDPattern keeps the identifier a single DNS label so it cannot
// alter the rest of the URL.
var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

type signInLocator struct {
	template string
}

// NewSignInLocator returns a [Locator] rendering template (one %s for the
// account identifier), e.g. "https://%s.signin.aws.amazon.com/console".
func NewSignInLocator(template string) Locator {
	return &signInLocator{template: template}
}

func (l *signInLocator) Locate(_ context.Context, accountID, containerID string) (models.Destination, error) {
	if !accountIDPattern.MatchString(accountID) {
		return models.Destination{}, fmt.Errorf("%w: account identifier %q", ErrInvalidDestination, accountID)
	}

	return models.Destination{
		AccountID:   accountID,
		URL:         fmt.Sprintf(l.template, accountID),
		ContainerID: containerID,
	}, nil
}
