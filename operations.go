package cascade

import (
	"context"
	"fmt"

	"github.com/cascadews/cascade.go/pkg/constants"
	"github.com/cascadews/cascade.go/pkg/models"
	"github.com/cascadews/cascade.go/pkg/wire"
)

// Operation names as they appear on the wire.
const (
	opRead                      = "read"
	opEdit                      = "edit"
	opCreate                    = "create"
	opDelete                    = "delete"
	opBatch                     = "batch"
	opCopy                      = "copy"
	opMove                      = "move"
	opPublish                   = "publish"
	opCheckIn                   = "checkIn"
	opCheckOut                  = "checkOut"
	opDeleteMessage             = "deleteMessage"
	opListMessages              = "listMessages"
	opMarkMessage               = "markMessage"
	opSendMessage               = "sendMessage"
	opListSites                 = "listSites"
	opListSubscribers           = "listSubscribers"
	opSearch                    = "search"
	opSiteCopy                  = "siteCopy"
	opReadAccessRights          = "readAccessRights"
	opEditAccessRights          = "editAccessRights"
	opReadAudits                = "readAudits"
	opReadPreferences           = "readPreferences"
	opEditPreference            = "editPreference"
	opReadWorkflowInformation   = "readWorkflowInformation"
	opReadWorkflowSettings      = "readWorkflowSettings"
	opEditWorkflowSettings      = "editWorkflowSettings"
	opPerformWorkflowTransition = "performWorkflowTransition"
)

// MarkType is the state markMessage moves a message to.
type MarkType string

const (
	MarkRead   MarkType = "read"
	MarkUnread MarkType = "unread"
)

func identifierParam(id *models.Identifier) (wire.Object, error) {
	if id == nil {
		return nil, fmt.Errorf("%w: identifier is nil", constants.ErrInvalidArgument)
	}
	return id.ToWire(), nil
}

// Read reads the asset behind id and returns its envelope, or nil when the
// read was unsuccessful. The outcome is in the tracker.
func (s *Service) Read(ctx context.Context, id *models.Identifier) (wire.Object, error) {
	ident, err := identifierParam(id)
	if err != nil {
		return nil, err
	}
	ret, err := s.callObject(ctx, opRead, wire.Object{"identifier": ident})
	if err != nil {
		return nil, err
	}
	if successOf(ret) != constants.True {
		return nil, nil
	}
	envelope, _ := wire.ObjectAt(ret, "asset")
	return envelope, nil
}

// Edit sends an asset envelope back to the service.
func (s *Service) Edit(ctx context.Context, envelope wire.Object) error {
	if len(envelope) == 0 {
		return fmt.Errorf("%w: asset is empty", constants.ErrInvalidArgument)
	}
	_, err := s.call(ctx, opEdit, wire.Object{"asset": envelope})
	return err
}

// EditStrict is Edit returning a *constants.OperationError when the service
// does not report success.
func (s *Service) EditStrict(ctx context.Context, envelope wire.Object) error {
	if len(envelope) == 0 {
		return fmt.Errorf("%w: asset is empty", constants.ErrInvalidArgument)
	}
	ret, err := s.callObject(ctx, opEdit, wire.Object{"asset": envelope})
	if err != nil {
		return err
	}
	return strict(opEdit, ret)
}

// Create creates the asset in envelope and returns the id the service
// assigned to it, or "" when creation failed.
func (s *Service) Create(ctx context.Context, envelope wire.Object) (string, error) {
	if len(envelope) == 0 {
		return "", fmt.Errorf("%w: asset is empty", constants.ErrInvalidArgument)
	}
	ret, err := s.callObject(ctx, opCreate, wire.Object{"asset": envelope})
	if err != nil {
		return "", err
	}
	return wire.StringAt(ret, "createdAssetId"), nil
}

func (s *Service) Delete(ctx context.Context, id *models.Identifier) error {
	return s.identifierOnly(ctx, opDelete, id)
}

// CopyParameters describes where Copy and Move place the asset.
type CopyParameters struct {
	Destination *models.Identifier
	NewName     string
	DoWorkflow  bool
}

func (p CopyParameters) toWire(key string) wire.Object {
	params := wire.Object{
		"newName":    p.NewName,
		"doWorkflow": p.DoWorkflow,
	}
	if p.Destination != nil {
		params["destinationContainerIdentifier"] = p.Destination.ToWire()
	}
	return wire.Object{key: params}
}

func (s *Service) Copy(ctx context.Context, id *models.Identifier, p CopyParameters) error {
	ident, err := identifierParam(id)
	if err != nil {
		return err
	}
	if p.Destination == nil {
		return fmt.Errorf("%w: copy needs a destination container", constants.ErrInvalidArgument)
	}
	if p.NewName == "" {
		return fmt.Errorf("%w: copy needs a new name", constants.ErrEmptyValue)
	}
	params := p.toWire("copyParameters")
	params["identifier"] = ident
	_, err = s.call(ctx, opCopy, params)
	return err
}

// Move moves or renames an asset. A nil destination keeps the parent.
func (s *Service) Move(ctx context.Context, id *models.Identifier, p CopyParameters) error {
	ident, err := identifierParam(id)
	if err != nil {
		return err
	}
	params := p.toWire("moveParameters")
	params["identifier"] = ident
	_, err = s.call(ctx, opMove, params)
	return err
}

// Publish publishes id, to every destination when none are given.
func (s *Service) Publish(ctx context.Context, id *models.Identifier, destinations ...*models.Identifier) error {
	return s.publish(ctx, id, false, destinations)
}

// Unpublish removes id from every destination when none are given.
func (s *Service) Unpublish(ctx context.Context, id *models.Identifier, destinations ...*models.Identifier) error {
	return s.publish(ctx, id, true, destinations)
}

func (s *Service) publish(ctx context.Context, id *models.Identifier, unpublish bool, destinations []*models.Identifier) error {
	ident, err := identifierParam(id)
	if err != nil {
		return err
	}
	info := wire.Object{
		"identifier": ident,
		"unpublish":  unpublish,
	}
	if len(destinations) > 0 {
		dest := make([]any, 0, len(destinations))
		for _, d := range destinations {
			if d == nil {
				return fmt.Errorf("%w: destination is nil", constants.ErrInvalidArgument)
			}
			dest = append(dest, d.ToWire())
		}
		info["destinations"] = dest
	}
	_, err = s.call(ctx, opPublish, wire.Object{"publishInformation": info})
	return err
}

func (s *Service) CheckIn(ctx context.Context, id *models.Identifier, comments string) error {
	ident, err := identifierParam(id)
	if err != nil {
		return err
	}
	_, err = s.call(ctx, opCheckIn, wire.Object{"identifier": ident, "comments": comments})
	return err
}

// CheckOut checks id out and returns the id of the working copy, or "" when
// the check out failed.
func (s *Service) CheckOut(ctx context.Context, id *models.Identifier) (string, error) {
	ident, err := identifierParam(id)
	if err != nil {
		return "", err
	}
	ret, err := s.callObject(ctx, opCheckOut, wire.Object{"identifier": ident})
	if err != nil {
		return "", err
	}
	if successOf(ret) != constants.True {
		return "", nil
	}
	return wire.StringAt(ret, "workingCopyIdentifier", "id"), nil
}

func (s *Service) DeleteMessage(ctx context.Context, id *models.Identifier) error {
	return s.identifierOnly(ctx, opDeleteMessage, id)
}

// ListMessages returns the messages element of a successful reply.
func (s *Service) ListMessages(ctx context.Context) (any, error) {
	ret, err := s.callObject(ctx, opListMessages, nil)
	if err != nil {
		return nil, err
	}
	if successOf(ret) != constants.True {
		return nil, nil
	}
	return ret["messages"], nil
}

func (s *Service) MarkMessage(ctx context.Context, id *models.Identifier, mark MarkType) error {
	ident, err := identifierParam(id)
	if err != nil {
		return err
	}
	if mark != MarkRead && mark != MarkUnread {
		return fmt.Errorf("%w: mark type %q", constants.ErrUnacceptableValue, mark)
	}
	_, err = s.call(ctx, opMarkMessage, wire.Object{"identifier": ident, "markType": string(mark)})
	return err
}

// Message is the payload of sendMessage. To names a user or a group.
type Message struct {
	To      string
	From    string
	Subject string
	Body    string
}

func (s *Service) SendMessage(ctx context.Context, m Message) error {
	if m.To == "" {
		return fmt.Errorf("%w: message has no recipient", constants.ErrEmptyValue)
	}
	_, err := s.call(ctx, opSendMessage, wire.Object{"message": wire.Object{
		"to":      m.To,
		"from":    m.From,
		"subject": m.Subject,
		"body":    m.Body,
	}})
	return err
}

// ListSites returns the sites element of the reply.
func (s *Service) ListSites(ctx context.Context) (any, error) {
	ret, err := s.callObject(ctx, opListSites, nil)
	if err != nil {
		return nil, err
	}
	return ret["sites"], nil
}

// ListSubscribers returns the subscribers element of the reply.
func (s *Service) ListSubscribers(ctx context.Context, id *models.Identifier) (any, error) {
	ident, err := identifierParam(id)
	if err != nil {
		return nil, err
	}
	ret, err := s.callObject(ctx, opListSubscribers, wire.Object{"identifier": ident})
	if err != nil {
		return nil, err
	}
	return ret["subscribers"], nil
}

// Search runs searchInformation and returns the matches element.
func (s *Service) Search(ctx context.Context, searchInformation wire.Object) (any, error) {
	if len(searchInformation) == 0 {
		return nil, fmt.Errorf("%w: search information is empty", constants.ErrInvalidArgument)
	}
	ret, err := s.callObject(ctx, opSearch, wire.Object{"searchInformation": searchInformation})
	if err != nil {
		return nil, err
	}
	return ret["matches"], nil
}

func (s *Service) SiteCopy(ctx context.Context, originalID, originalName, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: new site name", constants.ErrEmptyValue)
	}
	if originalID == "" && originalName == "" {
		return fmt.Errorf("%w: site copy needs the original id or name", constants.ErrInvalidArgument)
	}
	_, err := s.call(ctx, opSiteCopy, wire.Object{
		"originalSiteId":   wire.Nullable(originalID),
		"originalSiteName": wire.Nullable(originalName),
		"newSiteName":      newName,
	})
	return err
}

// ReadAccessRights returns the accessRightsInformation element.
func (s *Service) ReadAccessRights(ctx context.Context, id *models.Identifier) (wire.Object, error) {
	return s.readElement(ctx, opReadAccessRights, id, "accessRightsInformation")
}

func (s *Service) EditAccessRights(ctx context.Context, info wire.Object, applyToChildren bool) error {
	if len(info) == 0 {
		return fmt.Errorf("%w: access rights information is empty", constants.ErrInvalidArgument)
	}
	_, err := s.call(ctx, opEditAccessRights, wire.Object{
		"accessRightsInformation": info,
		"applyToChildren":         applyToChildren,
	})
	return err
}

// ReadAudits returns the audits element.
func (s *Service) ReadAudits(ctx context.Context, auditParameters wire.Object) (any, error) {
	ret, err := s.callObject(ctx, opReadAudits, wire.Object{"auditParameters": auditParameters})
	if err != nil {
		return nil, err
	}
	return ret["audits"], nil
}

// ReadPreferences returns the preferences element.
func (s *Service) ReadPreferences(ctx context.Context) (any, error) {
	ret, err := s.callObject(ctx, opReadPreferences, nil)
	if err != nil {
		return nil, err
	}
	return ret["preferences"], nil
}

func (s *Service) EditPreference(ctx context.Context, name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: preference name", constants.ErrEmptyValue)
	}
	_, err := s.call(ctx, opEditPreference, wire.Object{"preference": wire.Object{
		"name":  name,
		"value": value,
	}})
	return err
}

// ReadWorkflowInformation returns the workflow element, nil when the asset
// is not in a workflow.
func (s *Service) ReadWorkflowInformation(ctx context.Context, id *models.Identifier) (wire.Object, error) {
	return s.readElement(ctx, opReadWorkflowInformation, id, "workflow")
}

func (s *Service) ReadWorkflowSettings(ctx context.Context, id *models.Identifier) (wire.Object, error) {
	return s.readElement(ctx, opReadWorkflowSettings, id, "workflowSettings")
}

func (s *Service) EditWorkflowSettings(ctx context.Context, settings wire.Object, inheritToChildren, requireToChildren bool) error {
	if len(settings) == 0 {
		return fmt.Errorf("%w: workflow settings are empty", constants.ErrInvalidArgument)
	}
	_, err := s.call(ctx, opEditWorkflowSettings, wire.Object{
		"workflowSettings":                settings,
		"applyInheritWorkflowsToChildren": inheritToChildren,
		"applyRequireWorkflowToChildren":  requireToChildren,
	})
	return err
}

func (s *Service) PerformWorkflowTransition(ctx context.Context, workflowID, action, comment string) error {
	if workflowID == "" || action == "" {
		return fmt.Errorf("%w: workflow id and action are required", constants.ErrEmptyValue)
	}
	_, err := s.call(ctx, opPerformWorkflowTransition, wire.Object{
		"workflowTransitionInformation": wire.Object{
			"workflowId":        workflowID,
			"actionIdentifier":  action,
			"transitionComment": comment,
		},
	})
	return err
}

// Retrieve reads id and returns one field of the asset envelope. An empty
// field means the field registered for the identifier's type.
func (s *Service) Retrieve(ctx context.Context, id *models.Identifier, field string) (wire.Object, error) {
	if id == nil {
		return nil, fmt.Errorf("%w: identifier is nil", constants.ErrInvalidArgument)
	}
	if field == "" {
		f, err := models.PropertyFieldFor(id.Type())
		if err != nil {
			return nil, err
		}
		field = f
	}
	envelope, err := s.Read(ctx, id)
	if err != nil || envelope == nil {
		return nil, err
	}
	prop, _ := wire.ObjectAt(envelope, field)
	return prop, nil
}

func (s *Service) identifierOnly(ctx context.Context, operation string, id *models.Identifier) error {
	ident, err := identifierParam(id)
	if err != nil {
		return err
	}
	_, err = s.call(ctx, operation, wire.Object{"identifier": ident})
	return err
}

func (s *Service) readElement(ctx context.Context, operation string, id *models.Identifier, key string) (wire.Object, error) {
	ident, err := identifierParam(id)
	if err != nil {
		return nil, err
	}
	ret, err := s.callObject(ctx, operation, wire.Object{"identifier": ident})
	if err != nil {
		return nil, err
	}
	obj, _ := wire.ObjectAt(ret, key)
	return obj, nil
}
