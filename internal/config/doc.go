// Package config provides configuration loading, merging, and validation
// facilities for the message keeper.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it:
//  1. Environment variables (a .env file is loaded first when present)
//  2. Unprefixed variables such as DATABASE_URL and DIR
//  3. Command-line flags
//  4. JSON config file
//  5. Defaults
//
// The main entry point is [GetStructuredConfig].
package config
