/*
Package domain contains the data model that pergola renders.

Everything here is a transient, read-only artifact: documents, result
records, and state transitions are produced by external pipelines (a
retriever and a workflow engine) and handed to pergola for a single
print call. Pergola never creates, stores, or mutates them. The package
is kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Document: a retrieved text passage with its retrieval metadata.
  - NodeResult: pairs a node name with the record it produced; the first
    element of a result set is the terminal record.
  - StateTransition: one recorded step of a run (node name plus the state
    snapshot it left behind).
  - Run: the full bundle of artifacts one workflow execution leaves behind.
*/
package domain
