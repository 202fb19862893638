package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePositiveInteger ensures a string is a positive integer
func ValidatePositiveInteger(value string, fieldName string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	val, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s '%s' is invalid: must be a positive integer", fieldName, value)
	}
	if val < 1 {
		return fmt.Errorf("%s %d is invalid: must be a positive integer", fieldName, val)
	}
	return nil
}

// SplitLabels splits a comma separated label list, dropping blank entries.
func SplitLabels(value string) []string {
	var labels []string
	for _, label := range strings.Split(value, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// ValidateLabelCount ensures a comma separated label list does not name more
// labels than there are steps. An empty list is valid.
func ValidateLabelCount(value string, steps string) error {
	labels := SplitLabels(value)
	n, err := strconv.Atoi(strings.TrimSpace(steps))
	if err != nil || len(labels) == 0 {
		return nil
	}
	if len(labels) > n {
		return fmt.Errorf("%d labels given for %d steps", len(labels), n)
	}
	return nil
}
