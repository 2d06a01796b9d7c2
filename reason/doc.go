/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package reason turns a call site into a stable, dotted identifier such as
// "contact_service.add_contacts".
//
// Codes say what kind of failure happened; a reason says which component and
// operation of the client raised it. Reasons are used as match keys by the
// status mapper and as metadata in transport error details. The zero value is
// valid and means that no call site was available.
package reason
