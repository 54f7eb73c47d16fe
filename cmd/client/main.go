// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-rest-kit/internal/adapter"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type options struct {
	address  string
	timeout  time.Duration
	login    string
	password string
	register bool
	resource string
	ids      string
	limit    int
	offset   int
	orderBy  string
}

func parseOptions() options {
	var o options
	flag.StringVar(&o.address, "a", "localhost:8080", "server address")
	flag.DurationVar(&o.timeout, "timeout", 15*time.Second, "request timeout")
	flag.StringVar(&o.login, "login", "", "login to authenticate with")
	flag.StringVar(&o.password, "password", "", "password to authenticate with")
	flag.BoolVar(&o.register, "register", false, "register the login before fetching")
	flag.StringVar(&o.resource, "resource", "documents", "resource to fetch")
	flag.StringVar(&o.ids, "ids", "", `primary keys to fetch in one request, e.g. "1;2;3"`)
	flag.IntVar(&o.limit, "limit", 0, "page size, -1 for the unbounded page")
	flag.IntVar(&o.offset, "offset", 0, "page offset")
	flag.StringVar(&o.orderBy, "order-by", "", "comma separated ordering, e.g. -created_at,id")
	flag.Parse()
	return o
}

func main() {
	opts := parseOptions()
	fmt.Fprintf(os.Stderr, "Build version: %s, date: %s, commit: %s\n", orNA(buildVersion), orNA(buildDate), orNA(buildCommit))

	log := logger.New(os.Stderr, "go-rest-kit-client", zerolog.InfoLevel)
	client, err := adapter.NewHTTPAPIClient(adapter.Config{HTTPAddress: opts.address, RequestTimeout: opts.timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx := context.Background()

	if opts.login != "" {
		user := models.User{Login: opts.login, Password: opts.password}
		if opts.register {
			_, err = client.Register(ctx, user)
		} else {
			_, err = client.Login(ctx, user)
		}
		if err != nil {
			log.Fatal().Err(err).Str("login", opts.login).Msg("authentication failed")
		}
	}

	var result any
	if opts.ids != "" {
		result, err = client.GetSet(ctx, opts.resource, splitIDs(opts.ids))
	} else {
		result, err = client.List(ctx, opts.resource, adapter.ListParams{
			Limit:   opts.limit,
			Offset:  opts.offset,
			OrderBy: splitNonEmpty(opts.orderBy, ","),
		})
	}
	if err != nil {
		log.Fatal().Err(err).Str("resource", opts.resource).Msg("request failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("error writing result")
	}
}

func splitIDs(raw string) []string {
	return splitNonEmpty(raw, ";")
}

func splitNonEmpty(raw, sep string) []string {
	var parts []string
	for _, p := range strings.Split(raw, sep) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
