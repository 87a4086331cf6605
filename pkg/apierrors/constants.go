package apierrors

const (
	MsgUnauthorized       = "unauthorized"
	MsgValidation         = "validationError"
	MsgInvalidID          = "invalidID"
	MsgInvalidCredentials = "invalidCredentials"
	MsgInternal           = "internalError"

	MsgCustomerNotFound    = "customerNotFound"
	MsgMustArchiveCustomer = "mustArchiveCustomer"

	MsgTaskNotFound    = "taskNotFound"
	MsgMustArchiveTask = "mustArchiveTask"

	MsgMediaNotFound = "mediaNotFound"

	MsgCommentNotFound = "commentNotFound"
	MsgNestedReply     = "nestedReply"

	MsgUserNotFound    = "userNotFound"
	MsgMustArchiveUser = "mustArchiveUser"
	MsgEmailTaken      = "emailTaken"
)
