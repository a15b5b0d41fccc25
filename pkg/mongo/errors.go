package mongo

import "errors"

var (
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrEmptyField             = errors.New("empty mongo usernames field")
	ErrFailedToReadUsernames  = errors.New("failed to read usernames from mongo")
)
