// Package util provides common utilities including logging helpers,
// file system locations and ANSI-aware text helpers.
package util

import "github.com/sirupsen/logrus"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logrus.WithError(err).Warn(context)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		logrus.WithError(err).Fatal(context)
	}
}
