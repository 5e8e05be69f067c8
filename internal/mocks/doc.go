// Package mocks provides hand-written test doubles for the store and
// auth service interfaces. Function fields override single methods;
// the defaults behave like small in-memory implementations.
package mocks
