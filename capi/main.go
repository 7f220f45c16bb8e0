// Command capi exports the samples with C linkage. Build it as a library:
//
//	go build -buildmode=c-shared -o libnativesamples.so ./capi
//
// The build also writes libnativesamples.h declaring every exported symbol.
package main

//go:generate go run ../cmd/csamples stubgen -o zz_stub.go

func main() {}
