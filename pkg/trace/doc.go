/*
Package trace decodes workflow run artifacts (document dumps, result
records, and state-transition logs) from the formats engines actually emit:
JSON files, NDJSON streams, and YAML.

The decoders exist to solve one problem well: engines serialize results and
transitions as mappings keyed by node name, where "first key" carries
meaning. Go maps drop that order, so everything here walks the raw token
stream (json.Decoder tokens, yaml.Node content) and converts mappings into
explicit ordered (node, payload) pairs before anything touches a map.
*/
package trace
