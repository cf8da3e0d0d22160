// +build !use_int32

package clipper

type cInt int64

const defaultLoRange cInt = 0x3FFFFFFF
const defaultHiRange cInt = 0x3FFFFFFFFFFFFFFF
