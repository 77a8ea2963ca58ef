package cli

import (
	"context"
	"fmt"
	"os"
)

// Verify prompts for a certificate hash and prints the verification
// outcome. The workflow emits its own notification; this command adds the
// certificate details on a positive result.
func (a *App) Verify(ctx context.Context) error {
	hash, err := getSimpleText(a.reader, "Enter certificate hash", os.Stdout)
	if err != nil {
		return err
	}

	result, err := a.verify.Verify(ctx, hash)
	if err != nil {
		return err
	}

	if !result.Valid {
		printlnFn("Certificate is Invalid:", result.Message)
		return nil
	}

	cert := result.Certificate
	printlnFn("Certificate is Valid")
	printlnFn(fmt.Sprintf("  Certificate ID: %s", cert.ID))
	printlnFn(fmt.Sprintf("  Student Name:   %s", cert.StudentName))
	if cert.MatricNumber != "" {
		printlnFn(fmt.Sprintf("  Matric Number:  %s", cert.MatricNumber))
	}
	printlnFn(fmt.Sprintf("  Course:         %s", cert.Course))
	printlnFn(fmt.Sprintf("  Issue Date:     %s", cert.IssueDate))
	printlnFn(fmt.Sprintf("  Issuer:         %s", cert.Issuer))
	return nil
}
