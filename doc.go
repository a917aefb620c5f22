// Package cascade is a client for the asset operation web services of
// Cascade CMS.
//
// # Service
//
// [Service] exposes one method per remote operation: read, edit, create,
// delete, batch, copy, move, publish, workflow and messaging calls. Every
// call is sent with the configured [models.Authentication] and the outcome
// is recorded, so [Service.IsSuccessful], [Service.Message] and the raw
// exchange are available after each call.
//
// Remote failures are not Go errors. A read of a missing asset returns nil
// and leaves success "false" with the service message. Errors are returned
// for invalid arguments and transport failures, and by the strict calls
// [Service.EditStrict] and [Service.GetAsset], which turn an unsuccessful
// reply into a [*constants.OperationError].
//
// # Identifiers
//
// Assets are addressed by [models.Identifier], built by
// [models.CreateIdentifier] from a type, a path or id, and an optional site
// name. A 32 character hex string is always an id.
//
// # Assets
//
// [Service.GetAsset] reads an asset and materializes it into its concrete
// shape from [github.com/cascadews/cascade.go/pkg/asset]: templates with
// their page regions, containers with their children, blocks, formats,
// page configuration sets, or a generic asset. Shapes write themselves back
// with Edit.
//
// # Transport
//
// The default transport is SOAP over HTTP from
// [github.com/cascadews/cascade.go/pkg/connection/soap]. Anything that
// implements [connection.Connection] can be used instead.
//
// # Concurrency
//
// A Service may be shared between goroutines. Each call and the recording of
// its outcome happen under one lock, but reading the outcome afterwards can
// observe a later call made by another goroutine. Use the values returned by
// the call, or the strict variants, when that matters.
package cascade
