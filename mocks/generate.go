package mocks

import "github.com/djdv/go-persistent"

// Jar ...
type Jar = persistent.Jar

// Resolver ...
type Resolver = persistent.Resolver

// Stats ...
type Stats = persistent.Stats

//go:generate moq -rm -out persistent_mocks.go . Jar Resolver Stats
