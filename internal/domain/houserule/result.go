package houserule

// ValidationResult is the verdict of one rule. Reason is empty when valid.
type ValidationResult struct {
	IsValid bool
	Reason  string
}

func Valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

func Invalid(reason string) ValidationResult {
	return ValidationResult{IsValid: false, Reason: reason}
}
