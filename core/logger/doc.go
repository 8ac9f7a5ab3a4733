// Package logger records task execution events as newline delimited JSON
// and summarizes recorded logs.
package logger
