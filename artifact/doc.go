// Package artifact stores the durable deliverables responders produce:
// market analyses, requirements documents, technical specifications, MVP
// scopes. Stores assign ids on save; callers read them back per project or
// individually.
package artifact
