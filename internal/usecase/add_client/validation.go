package add_client

import "fmt"

func validateRequest(req Request) error {
	if !req.Service.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidService, req.Service)
	}

	if !req.Speed.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSpeed, req.Speed)
	}

	return nil
}
