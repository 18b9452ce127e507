package product

import "fmt"

func validateProductRequest(req productRequest) error {
	if req.Code == "" {
		return fmt.Errorf("code is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
