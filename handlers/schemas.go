// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "github.com/xeipuuv/gojsonschema"

var (
	registerSchema = gojsonschema.NewStringLoader(`{
		"type": "object",
		"required": ["username", "email", "password", "age", "state"],
		"properties": {
			"username":   {"type": "string", "minLength": 3, "maxLength": 150, "pattern": "^[A-Za-z0-9_.@+-]+$"},
			"email":      {"type": "string", "format": "email", "maxLength": 254},
			"password":   {"type": "string", "minLength": 8, "maxLength": 72},
			"first_name": {"type": "string", "maxLength": 150},
			"last_name":  {"type": "string", "maxLength": 150},
			"age":        {"type": "integer"},
			"state":      {"type": "string", "pattern": "^[A-Z]{2}$"}
		}
	}`)

	loginSchema = gojsonschema.NewStringLoader(`{
		"type": "object",
		"required": ["username", "password"],
		"properties": {
			"username": {"type": "string", "minLength": 1},
			"password": {"type": "string", "minLength": 1}
		}
	}`)

	castVoteSchema = gojsonschema.NewStringLoader(`{
		"type": "object",
		"required": ["candidate_id"],
		"properties": {
			"candidate_id": {"type": "string", "minLength": 1}
		}
	}`)

	createElectionSchema = gojsonschema.NewStringLoader(`{
		"type": "object",
		"required": ["slug", "title", "election_type", "start_time", "end_time"],
		"properties": {
			"slug":          {"type": "string", "minLength": 1, "maxLength": 100},
			"title":         {"type": "string", "minLength": 1, "maxLength": 200},
			"election_type": {"type": "string", "enum": ["NATIONAL", "STATE"]},
			"state":         {"type": "string"},
			"start_time":    {"type": "string", "format": "date-time"},
			"end_time":      {"type": "string", "format": "date-time"}
		}
	}`)

	addCandidateSchema = gojsonschema.NewStringLoader(`{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1, "maxLength": 200}
		}
	}`)

	verifyUserSchema = gojsonschema.NewStringLoader(`{
		"type": "object",
		"required": ["verified"],
		"properties": {
			"verified": {"type": "boolean"}
		}
	}`)
)
