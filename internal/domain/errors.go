package domain

import "errors"

var (
	// ErrResumeNotFound signals that no resume is stored under the requested ID.
	ErrResumeNotFound = errors.New("resume not found")
	// ErrInvalidResume signals a resume that failed validation.
	ErrInvalidResume = errors.New("invalid resume")
	// ErrInvalidJobPosting signals job text that failed validation.
	ErrInvalidJobPosting = errors.New("invalid job posting")

	// ErrJobTooShort signals job text under the minimum length.
	ErrJobTooShort = errors.New("job description too short")
	// ErrJobTooLong signals job text over the maximum length.
	ErrJobTooLong = errors.New("job description too long")
	// ErrNotJobPosting signals text that does not read like a job posting.
	ErrNotJobPosting = errors.New("text does not look like a job description")

	// ErrResumeTooShort signals extracted resume text under the minimum length.
	ErrResumeTooShort = errors.New("resume text too short")
	// ErrInvalidFileName signals an unsupported or unsafe resume file name.
	ErrInvalidFileName = errors.New("invalid resume file name")
	// ErrInvalidFileSize signals an empty or oversized resume file.
	ErrInvalidFileSize = errors.New("invalid resume file size")
)
