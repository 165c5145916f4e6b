// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Quality selects the rendition of a video returned by a download.
type Quality string

const (
	QualityOriginal Quality = "original"
	QualityHigh     Quality = "high"
	QualityMedium   Quality = "medium"
	QualityLow      Quality = "low"
)

// qualityTransformations maps reduced qualities to the media host
// transformation token inserted into the delivery URL.
var qualityTransformations = map[Quality]string{
	QualityHigh:   "q_80",
	QualityMedium: "q_60",
	QualityLow:    "q_40",
}

// ParseQuality converts a query parameter into a [Quality].
// An empty value means [QualityOriginal].
func ParseQuality(s string) (Quality, error) {
	if s == "" {
		return QualityOriginal, nil
	}

	q := Quality(s)
	if q == QualityOriginal {
		return q, nil
	}
	if _, ok := qualityTransformations[q]; ok {
		return q, nil
	}

	return "", fmt.Errorf("unknown quality %q", s)
}

// Transformation returns the URL transformation token for q and false for
// [QualityOriginal].
func (q Quality) Transformation() (string, bool) {
	t, ok := qualityTransformations[q]
	return t, ok
}
