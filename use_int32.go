// +build use_int32

package clipper

type cInt int32

const defaultLoRange cInt = 46340
const defaultHiRange cInt = 46340
