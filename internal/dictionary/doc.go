package dictionary

// Package dictionary talks to the Merriam-Webster dictionary API
// (dictionaryapi.com). It builds request URLs for the supported references,
// performs the HTTP GET through go-resty and decodes the JSON body into
// model.Entry values.
