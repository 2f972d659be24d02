// Package locker manages the locker file: a JSON registry mapping server
// types to the versions that can be downloaded or built for them.
//
// A Store owns one Registry for the lifetime of a command. Every successful
// mutation rewrites the whole file. Nothing guards the load, mutate, save
// cycle against other processes, so two invocations racing on the same file
// can lose updates. Callers must ensure exclusive access.
package locker
