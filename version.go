package esdc

// Version of the esdc-go library.
const Version = "1.0.0"

// userAgent identifies this library to the server, following the
// esdc-api/<client>/<version> convention.
const userAgent = "esdc-api/go-client/" + Version
