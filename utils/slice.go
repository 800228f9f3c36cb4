// Copyright 2025 Label Studio contributors.
// SPDX-License-Identifier: Apache-2.0

package utils

func Map[T any, U any](slice []T, f func(T) U) []U {
	result := make([]U, len(slice))
	for i, v := range slice {
		result[i] = f(v)
	}
	return result
}

func Filter[T any](slice []T, f func(T) bool) []T {
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if f(v) {
			result = append(result, v)
		}
	}
	return result
}

func Contains[T comparable](slice []T, el T) bool {
	for _, v := range slice {
		if v == el {
			return true
		}
	}
	return false
}

func ContainsAll[T comparable](slice []T, els []T) bool {
	for _, el := range els {
		if !Contains(slice, el) {
			return false
		}
	}
	return true
}
