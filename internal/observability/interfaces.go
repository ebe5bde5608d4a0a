// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

// This package intentionally has no remaining interfaces.Observable
// type: nothing in mp3meta/id3v2/mpegscan is itself a stateful
// component with a fixed identity worth naming via GetComponentName()
// — they're all plain functions that already take a component string
// per call site (see logDetail/logMetric/startStep). See DESIGN.md.
