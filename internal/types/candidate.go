// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// NotSpecified is the sentinel extractors emit when a field could not be found.
const NotSpecified = "Not Specified"

// CandidateRecord represents the structured fields extracted from one resume
type CandidateRecord struct {
	Filename        string   `json:"filename,omitempty" validate:"max=512"`
	Name            string   `json:"name,omitempty" validate:"max=256"`
	Email           string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string   `json:"phone,omitempty" validate:"max=64"`
	Skills          []string `json:"skills"`
	ExperienceYears string   `json:"experience_years"` // integer, "~N", or "Not Specified"
	Education       string   `json:"education"`        // free-form, may be pipe-delimited
	RawText         string   `json:"raw_text"`
}

// Validate validates the CandidateRecord using the validator.
func (c *CandidateRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// JobAnalysis is the structured view of a job description derived once per scoring pass
type JobAnalysis struct {
	RequiredSkills         []string `json:"required_skills"`
	ExperienceRequirements string   `json:"experience_requirements"` // "<N> years" or "Not specified"
	EducationRequirements  string   `json:"education_requirements"`  // " | " joined tokens or "Not specified"
	ImportantKeywords      []string `json:"important_keywords"`
}
